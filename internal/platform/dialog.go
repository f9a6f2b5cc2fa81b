package platform

import (
	"errors"

	"github.com/ncruces/zenity"
)

// DialogPicker показывает системный диалог выбора аудиофайла.
// Отмена диалога не ошибка: возвращается пустой путь.
type DialogPicker struct{}

func (DialogPicker) PickMusic() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.mp3", "*.wav", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
