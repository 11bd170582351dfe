/* pkg/logger/logger.go */

package logger

import (
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log          *zap.Logger
	consoleLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	undoGlobals  func()
)

// InitializeWithFallback builds a console core on stderr (stdout carries
// passwords) tee'd with a JSON file core. Without a writable log path it
// logs to the console only.
func InitializeWithFallback() {
	consoleLevel.SetLevel(ParseLogLevel(os.Getenv("LOG_LEVEL"), zapcore.WarnLevel))

	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)

	path, writer, err := FindWritableLogPath(PlatformLogPaths())
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  No writable log path found. Logging to console only.")
		SetLogger(zap.New(console, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
		return
	}

	core := zapcore.NewTee(
		console,
		zapcore.NewCore(zapcore.NewJSONEncoder(DefaultFileEncoderConfig()), writer, zap.InfoLevel),
	)
	SetLogger(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
	log.Debug("Logger initialized", zap.String("log_path", path))
}

// SetLogger installs l as the zap and otelzap global logger.
func SetLogger(l *zap.Logger) {
	if undoGlobals != nil {
		undoGlobals()
	}
	log = l
	zap.ReplaceGlobals(l)
	undoGlobals = otelzap.ReplaceGlobals(otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel)))
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if log == nil {
		InitializeWithFallback()
	}
	return log
}

// Quiet stops console output while a full-screen UI owns the terminal.
// The returned func restores the previous level.
func Quiet() func() {
	prev := consoleLevel.Level()
	consoleLevel.SetLevel(zapcore.FatalLevel)
	return func() { consoleLevel.SetLevel(prev) }
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
