/* pkg/interaction/clipboard.go */

package interaction

import (
	"github.com/atotto/clipboard"
	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
)

// Clipboard is anything a password can be copied to.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard (pbcopy, xclip/xsel/wl-copy,
// or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return cerr.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Copy puts text on cb. Empty text is a no-op, so the clipboard is never
// cleared by accident. It reports whether anything was copied.
func Copy(cb Clipboard, text string) (bool, error) {
	if text == "" {
		return false, nil
	}
	if err := cb.WriteAll(text); err != nil {
		zap.L().Warn("Clipboard copy failed", zap.Error(err))
		return false, eos_err.NewExpectedError(eos_err.NewFilesystemError("failed to copy to clipboard", err,
			"on Linux install xclip, xsel or wl-clipboard",
			"or rerun without --copy"))
	}
	zap.L().Debug("Copied password to clipboard", zap.Int("length", len([]rune(text))))
	return true, nil
}
