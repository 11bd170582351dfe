// pkg/eos_err/util.go

package eos_err

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	if errors.As(err, &e) {
		return true
	}
	return CategoryOf(err) == CategoryValidation || CategoryOf(err) == CategoryUser
}

// PrintError prints a human-readable error message to w without exiting.
func PrintError(w io.Writer, userMessage string, err error) {
	if err == nil {
		return
	}
	if IsExpectedUserError(err) {
		zap.L().Warn(userMessage, zap.Error(err))
		fmt.Fprintf(w, "⚠️  %s: %v\n", userMessage, err)
		return
	}
	zap.L().Error(userMessage, zap.Error(err))
	fmt.Fprintf(w, "❌ Error: %s: %v\n", userMessage, err)
}
