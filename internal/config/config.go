// internal/config/config.go
package config

import (
	"image/color"
	"math"
	"time"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	WindowTitle  = "Valentine"

	MaxDeltaTime = 0.06

	// Сердечки на фоне
	HeartCount            = 42
	HeartSizeMin          = 10.0
	HeartSizeMax          = 26.0
	HeartSpeedMin         = 0.45
	HeartSpeedMax         = 1.35
	HeartDriftMin         = -0.25
	HeartDriftMax         = 0.25
	HeartSpinMin          = -0.008
	HeartSpinMax          = 0.008
	HeartAlphaMin         = 0.35
	HeartAlphaMax         = 0.85
	HeartHueMin           = 330.0
	HeartHueMax           = 360.0
	HeartSwayMin          = -0.01
	HeartSwayMax          = 0.01
	HeartMaxDrift         = 0.6
	HeartRecycleThreshold = -100.0 // ниже этого y (в единицах dpr) сердце уходит на повтор
	HeartRecycleDepthMin  = 30.0   // насколько ниже нижнего края появляется заново
	HeartRecycleDepthMax  = 140.0
	HeartGlowBlur         = 18.0
	HeartSaturation       = 0.90
	HeartLightness        = 0.65
	HeartGlowAlpha        = 0.35
	HeartGlowLayers       = 3

	// Конфетти
	ConfettiLifetime    = 3.6
	ConfettiDurationMin = 1.6
	ConfettiDurationMax = 3.2
	ConfettiSizeMin     = 14.0
	ConfettiSizeMax     = 26.0
	ConfettiStartVH     = -10.0 // translateY в начале, % высоты
	ConfettiEndVH       = 115.0
	ConfettiTopVH       = -5.0
	ConfettiEndAlpha    = 0.95
	ConfettiHeartChance = 0.55
	ConfettiShadowY     = 8.0

	// Сколько конфетти выпускает каждое действие
	ConfettiYes     = 180
	ConfettiNo      = 25
	ConfettiSeal    = 90
	ConfettiSparkle = 120
	ConfettiCopy    = 35
	ConfettiMusic   = 40

	// Пульс полароида
	PulseDuration = 0.65
	PulseAngle    = 2.0 * math.Pi / 180
	PulseScale    = 0.03

	// Прокрутка страницы
	ScrollEase  = 0.18
	ScrollWheel = 60.0
	ScrollSnap  = 0.5

	// Кнопки
	ButtonWidth    = 180
	ButtonHeight   = 40
	ButtonSpacing  = 16
	ButtonRadius   = 12
	ModalWidth     = 560
	ModalHeight    = 440
	ModalPadding   = 28
	PolaroidWidth  = 220
	PolaroidHeight = 260

	TitleFontSize   = 34
	RegularFontSize = 16
	SmallFontSize   = 13

	// Терминальный режим
	TerminalFrame = time.Second / 30
	TerminalCellW = 8
	TerminalCellH = 16

	DefaultContentPath = "assets/content.json"
	DefaultMusicPath   = "assets/music.mp3"
)

var (
	BackgroundColor  = color.RGBA{255, 240, 244, 255}
	SectionTint      = color.RGBA{255, 228, 236, 255}
	TitleColor       = color.RGBA{176, 32, 72, 255}
	TextColor        = color.RGBA{90, 30, 50, 255}
	MutedTextColor   = color.RGBA{150, 90, 110, 255}
	ButtonColor      = color.RGBA{255, 77, 109, 255}
	ButtonHoverColor = color.RGBA{230, 55, 90, 255}
	ButtonGhostColor = color.NRGBA{255, 255, 255, 230}
	ButtonTextColor  = color.RGBA{255, 255, 255, 255}
	BackdropColor    = color.RGBA{40, 10, 20, 150}
	ModalColor       = color.NRGBA{255, 252, 250, 255}
	PolaroidColor    = color.RGBA{255, 255, 255, 255}
	PhotoColor       = color.RGBA{255, 196, 210, 255}
	ResultBoxColor   = color.NRGBA{255, 255, 255, 200}
	ConfettiShadow   = color.NRGBA{255, 77, 109, 64}
	SparkleColor     = color.NRGBA{255, 214, 90, 255}
	ArrowColor       = color.NRGBA{200, 140, 60, 255}
	ConfettiHeartHue = 345.0
	ArrowHeartHue    = 330.0
)
