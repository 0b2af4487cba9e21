package cli

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

// ClipboardError reports a failed copy to the system clipboard. Nothing is
// changed when it happens; the text can still be copied by hand.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard copy failed: %v; select and copy the line manually", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// asClipboardError wraps err unless it already is a *ClipboardError.
func asClipboardError(err error) *ClipboardError {
	var clipErr *ClipboardError
	if errors.As(err, &clipErr) {
		return clipErr
	}
	return &ClipboardError{Err: err}
}

// CopyFunc puts text on the clipboard.
type CopyFunc func(text string) error

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return &ClipboardError{Err: errClipboardUnsupported}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return &ClipboardError{Err: err}
	}
	return nil
}
