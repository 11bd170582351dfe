/* pkg/logger/paths.go */

package logger

import (
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
)

// PlatformLogPaths returns log file candidates in order of preference.
func PlatformLogPaths() []string {
	return []string{
		xdg.StatePath("pwgen.log"), // ~/.local/state/pwgen/pwgen.log
		shared.LogsPWD,
		shared.LogsTmp,
	}
}
