package event

const (
	ConfettiRequested EventType = "ConfettiRequested" // Data: int, число кусочков
	HeroPulse         EventType = "HeroPulse"         // Пульс полароида
	MessageChanged    EventType = "MessageChanged"    // Data: string
	MusicToggled      EventType = "MusicToggled"      // Data: bool, играет ли музыка
	LetterOpened      EventType = "LetterOpened"
	LetterClosed      EventType = "LetterClosed"
	ScrollRequested   EventType = "ScrollRequested" // Прокрутка к вопросу
)
