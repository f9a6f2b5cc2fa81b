// internal/state/card_state.go
package state

import (
	"image"
	"log"

	"valentine-card/internal/app"
	"valentine-card/internal/assets"
	"valentine-card/internal/config"
	"valentine-card/internal/system"
	"valentine-card/internal/ui"
	"valentine-card/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*CardState)(nil)
var _ Resizable = (*CardState)(nil)

// CardState — единственный экран открытки: фоновые сердечки, страница, письмо и конфетти.
type CardState struct {
	sm       *StateMachine
	card     *app.Card
	hearts   *system.HeartSystem
	confetti *system.ConfettiSystem
	renderer *render.HeartRenderer
	filler   *render.Filler
	fonts    *assets.FontManager
	faces    ui.Faces
	page     *ui.Page
	modal    *ui.LetterModal

	width, height int
	dpr           float64
}

// NewCardState собирает экран. Сердечки стартуют при первом Resize,
// когда известен размер холста. fonts может быть nil, тогда текст не рисуется.
func NewCardState(sm *StateMachine, card *app.Card, rng system.Rand, fonts *assets.FontManager) *CardState {
	dispatcher := card.Dispatcher()
	return &CardState{
		sm:       sm,
		card:     card,
		hearts:   system.NewHeartSystem(system.DefaultHeartParams(), rng),
		confetti: system.NewConfettiSystem(rng, dispatcher),
		renderer: render.NewHeartRenderer(),
		filler:   render.NewFiller(),
		fonts:    fonts,
		page:     ui.NewPage(dispatcher),
		modal:    ui.NewLetterModal(),
		dpr:      1,
	}
}

func (s *CardState) Enter() {
	log.Println("Card opened")
}

func (s *CardState) Resize(width, height int, dpr float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if dpr <= 0 {
		dpr = 1
	}
	s.width, s.height, s.dpr = width, height, dpr
	if s.hearts.Ready() {
		s.hearts.Resize(float64(width), float64(height), dpr)
	} else {
		s.hearts.Init(float64(width), float64(height), dpr)
		log.Printf("Heart field started at %dx%d, dpr %.2f", width, height, dpr)
	}
	s.page.Layout(width, height, dpr)
	s.modal.Layout(width, height, dpr)
	s.faces = ui.LoadFaces(s.fonts, dpr)
}

func (s *CardState) Update(deltaTime float64) {
	s.hearts.Step()
	s.confetti.Update(deltaTime)
	s.page.Update(deltaTime)
	s.handleInput()
}

func (s *CardState) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.card.HandleEscape()
	}

	if _, dy := ebiten.Wheel(); dy != 0 && !s.card.LetterOpen() {
		s.page.Scroll.Wheel(-dy * config.ScrollWheel * s.dpr)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.HandleAction(s.hitTest(x, y))
	}
}

func (s *CardState) hitTest(x, y int) ui.Action {
	if s.card.LetterOpen() {
		return s.modal.HitTest(x, y)
	}
	return s.page.HitTest(x, y)
}

// HandleAction вызывает обработчик открытки для нажатой кнопки.
func (s *CardState) HandleAction(action ui.Action) {
	switch action {
	case ui.ActionOpenLetter:
		s.card.OpenLetter()
	case ui.ActionCloseLetter:
		s.card.CloseLetter()
	case ui.ActionScroll:
		s.card.ScrollToQuestion()
	case ui.ActionMusic:
		s.card.ToggleMusic()
	case ui.ActionSparkle:
		s.card.Sparkle()
	case ui.ActionYes:
		s.card.Yes()
	case ui.ActionNo:
		s.card.No()
	case ui.ActionSeal:
		s.card.Seal()
	case ui.ActionCopy:
		s.card.CopyLetter()
	}
}

func (s *CardState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.DrawHearts(screen, s.hearts.Hearts(), s.dpr)

	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(cx, cy)
	pageCursor := cursor
	if s.card.LetterOpen() {
		pageCursor = image.Pt(-1, -1) // под письмом кнопки страницы не подсвечиваются
	}
	s.page.Draw(screen, s.filler, s.card, s.faces, pageCursor)
	if s.card.LetterOpen() {
		s.modal.Draw(screen, s.filler, s.card, s.faces, cursor)
	}

	s.renderer.DrawConfetti(screen, s.confetti.Layers(), s.dpr)
}

func (s *CardState) Exit() {
	s.hearts.Dispose()
	s.confetti.Clear()
	if s.fonts != nil {
		s.fonts.Cleanup()
	}
	log.Println("Card closed")
}
