package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WrapText разбивает s на строки не шире maxWidth пикселей.
// Слово длиннее строки остается на своей строке целиком.
func WrapText(face font.Face, s string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// lineHeight — шаг между строками для face.
func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// drawLines рисует строки, выровненные по центру относительно cx, и возвращает y после последней.
func drawLines(screen *ebiten.Image, lines []string, face font.Face, cx, y int, clr color.Color) int {
	step := lineHeight(face)
	for _, l := range lines {
		y += step
		if l == "" {
			continue
		}
		w := font.MeasureString(face, l).Ceil()
		text.Draw(screen, l, face, cx-w/2, y, clr)
	}
	return y
}
