package app

import (
	"errors"
	"log"
	"strings"

	"valentine-card/internal/config"
	"valentine-card/internal/defs"
	"valentine-card/internal/event"
	"valentine-card/internal/interfaces"
)

var errNoClipboard = errors.New("no clipboard")

// Card holds the shared UI state of the card and the button handlers.
// Handlers only touch the result message, the letter flag and the music flag,
// so firing them in any order can at worst leave a stale message.
type Card struct {
	Content    defs.Content
	dispatcher *event.Dispatcher
	clipboard  interfaces.Clipboard
	music      interfaces.MusicPlayer

	message    string
	yesIndex   int
	noIndex    int
	letterOpen bool
	musicOn    bool
}

// NewCard creates the card controller. clipboard and music may be nil.
func NewCard(content defs.Content, dispatcher *event.Dispatcher, clipboard interfaces.Clipboard, music interfaces.MusicPlayer) *Card {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Card{
		Content:    content,
		dispatcher: dispatcher,
		clipboard:  clipboard,
		music:      music,
	}
}

func (c *Card) Message() string { return c.message }

func (c *Card) LetterOpen() bool { return c.letterOpen }

func (c *Card) MusicOn() bool { return c.musicOn }

func (c *Card) Dispatcher() *event.Dispatcher { return c.dispatcher }

// MusicLabel returns the caption for the music button.
func (c *Card) MusicLabel() string {
	if c.musicOn {
		return c.Content.MusicOnLabel
	}
	return c.Content.MusicLabel
}

// Yes shows the next "yes" line and celebrates.
func (c *Card) Yes() {
	lines := c.Content.YesLines
	if len(lines) == 0 {
		return
	}
	line := lines[c.yesIndex%len(lines)]
	c.yesIndex++
	c.celebrate(line)
}

// No shows the next "no" line with a small burst.
func (c *Card) No() {
	lines := c.Content.NoLines
	if len(lines) == 0 {
		return
	}
	c.setMessage(lines[c.noIndex%len(lines)])
	c.noIndex++
	c.confetti(config.ConfettiNo)
}

// Seal stamps the letter.
func (c *Card) Seal() {
	c.setMessage(c.Content.SealMessage)
	c.confetti(config.ConfettiSeal)
}

// Sparkle fires confetti without touching the message.
func (c *Card) Sparkle() {
	c.confetti(config.ConfettiSparkle)
}

// LetterText joins the trimmed, non-empty letter paragraphs with blank lines.
func (c *Card) LetterText() string {
	parts := make([]string, 0, len(c.Content.Letter)+1)
	for _, p := range c.Content.Letter {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if sig := strings.TrimSpace(c.Content.Signature); sig != "" {
		parts = append(parts, sig)
	}
	return strings.Join(parts, "\n\n")
}

// CopyLetter writes the letter to the clipboard.
func (c *Card) CopyLetter() {
	err := errNoClipboard
	if c.clipboard != nil {
		err = c.clipboard.WriteAll(c.LetterText())
	}
	if err != nil {
		log.Printf("copy letter: %v", err)
		c.setMessage(c.Content.CopyFailed)
		return
	}
	c.setMessage(c.Content.CopiedMessage)
	c.confetti(config.ConfettiCopy)
}

// ToggleMusic starts or pauses the background music.
func (c *Card) ToggleMusic() {
	if c.musicOn {
		if c.music != nil {
			c.music.Pause()
		}
		c.musicOn = false
		c.dispatcher.Emit(event.MusicToggled, false)
		return
	}

	if c.music == nil {
		c.setMessage(c.Content.MusicTip)
		return
	}
	if err := c.music.Play(); err != nil {
		log.Printf("music: %v", err)
		c.setMessage(c.Content.MusicTip)
		return
	}
	c.musicOn = true
	c.dispatcher.Emit(event.MusicToggled, true)
	c.confetti(config.ConfettiMusic)
}

// OpenLetter shows the letter modal.
func (c *Card) OpenLetter() {
	if c.letterOpen {
		return
	}
	c.letterOpen = true
	c.dispatcher.Emit(event.LetterOpened, nil)
}

// CloseLetter hides the letter modal.
func (c *Card) CloseLetter() {
	if !c.letterOpen {
		return
	}
	c.letterOpen = false
	c.dispatcher.Emit(event.LetterClosed, nil)
}

// HandleEscape closes the letter if it is open and reports whether it did.
func (c *Card) HandleEscape() bool {
	if !c.letterOpen {
		return false
	}
	c.CloseLetter()
	return true
}

// ScrollToQuestion asks the page to scroll to the question section.
func (c *Card) ScrollToQuestion() {
	c.dispatcher.Emit(event.ScrollRequested, nil)
}

func (c *Card) celebrate(message string) {
	c.setMessage(message)
	c.confetti(config.ConfettiYes)
	c.dispatcher.Emit(event.HeroPulse, nil)
}

func (c *Card) setMessage(message string) {
	c.message = message
	c.dispatcher.Emit(event.MessageChanged, message)
}

func (c *Card) confetti(count int) {
	c.dispatcher.Emit(event.ConfettiRequested, count)
}
