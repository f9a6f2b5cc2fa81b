package defs

// Content — все тексты открытки. Загружается из JSON, недостающие поля
// берутся из DefaultContent.
type Content struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Question      string   `json:"question"`
	YesLines      []string `json:"yes_lines"`
	NoLines       []string `json:"no_lines"`
	Letter        []string `json:"letter"`
	Signature     string   `json:"signature"`
	SealMessage   string   `json:"seal_message"`
	CopiedMessage string   `json:"copied_message"`
	CopyFailed    string   `json:"copy_failed_message"`
	MusicTip      string   `json:"music_tip"`
	MusicLabel    string   `json:"music_label"`
	MusicOnLabel  string   `json:"music_on_label"`
}
