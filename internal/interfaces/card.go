package interfaces

// Clipboard — запись текста в системный буфер обмена
type Clipboard interface {
	WriteAll(text string) error
}

// MusicPlayer — фоновая музыка открытки
type MusicPlayer interface {
	Play() error
	Pause()
}

// FilePicker — выбор файла с музыкой, если встроенного нет
type FilePicker interface {
	PickMusic() (string, error)
}
