package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager разбирает встроенный шрифт один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager создает менеджер на основе Go Regular.
func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	log.Println("Font loaded: Go Regular")
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face возвращает начертание размера size. Ошибка создания логируется,
// тогда возвращается ближайшее уже созданное начертание или nil.
func (m *FontManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: Failed to create font face of size %.1f: %v", size, err)
		for _, f := range m.faces {
			return f
		}
		return nil
	}
	m.faces[size] = face
	return face
}

// Cleanup закрывает все созданные начертания.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: Failed to close font face %.1f: %v", size, err)
		}
	}
	m.faces = make(map[float64]font.Face)
	log.Println("All font faces closed.")
}
