package game

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("clipboard: no copy utility available")

// CopySnapshot puts a session snapshot on the system clipboard.
func CopySnapshot(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
