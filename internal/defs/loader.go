package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadContent читает тексты открытки из JSON-файла.
// Пустые или отсутствующие поля заменяются встроенными значениями.
func LoadContent(path string) (Content, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return DefaultContent(), fmt.Errorf("failed to read content file: %w", err)
	}
	return ParseContent(file)
}

// ParseContent разбирает JSON с текстами.
func ParseContent(data []byte) (Content, error) {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return DefaultContent(), fmt.Errorf("failed to unmarshal content: %w", err)
	}
	c = c.withDefaults()
	log.Printf("Loaded content: %d yes lines, %d no lines, %d letter paragraphs", len(c.YesLines), len(c.NoLines), len(c.Letter))
	return c, nil
}
