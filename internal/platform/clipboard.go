package platform

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported — на этой системе нет доступного буфера обмена
// (например, не найден xclip/xsel/wl-copy).
var ErrClipboardUnsupported = errors.New("clipboard unsupported")

// SystemClipboard пишет в системный буфер обмена.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
