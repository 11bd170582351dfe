// pkg/logger/writer.go

package logger

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
	"go.uber.org/zap/zapcore"
)

// GetLogFileWriter opens path for appending, creating it owner-only.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := xdg.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("log directory error: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, shared.FilePermOwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns the first candidate that opens, with its writer.
func FindWritableLogPath(candidates []string) (string, zapcore.WriteSyncer, error) {
	for _, path := range candidates {
		if w, err := GetLogFileWriter(path); err == nil {
			return path, w, nil
		}
	}
	return "", nil, fmt.Errorf("no writable log path found")
}
