package eos_io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// MaxPasswordLength defines the maximum allowed password input length
const MaxPasswordLength = 1024

var isTerminal = term.IsTerminal

// InputValidationError represents input validation errors
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// validatePasswordInput validates password input for security
func validatePasswordInput(password, fieldName string) error {
	if len(password) > MaxPasswordLength {
		return &InputValidationError{
			Field:  fieldName,
			Reason: fmt.Sprintf("too long (%d bytes, max %d)", len(password), MaxPasswordLength),
		}
	}

	if !utf8.ValidString(password) {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "contains invalid UTF-8 sequences",
		}
	}

	for _, r := range password {
		if r < 32 && r != '\t' {
			return &InputValidationError{
				Field:  fieldName,
				Reason: "contains control characters",
			}
		}
		if r >= 127 && r <= 159 {
			return &InputValidationError{
				Field:  fieldName,
				Reason: "contains C1 control characters",
			}
		}
	}

	return nil
}

// ReadPassword reads one password from in. On a terminal the prompt goes to
// out and input is not echoed; otherwise a single line is read.
func ReadPassword(rc *RuntimeContext, in *os.File, out io.Writer, prompt string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	tty := IsTerminal(in)
	logger.Debug("Reading password input", zap.Bool("tty", tty))

	// INTERVENE
	var pw string
	if tty {
		fmt.Fprint(out, prompt)
		b, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		pw = string(b)
	} else {
		line, err := ReadLine(in)
		if err != nil {
			return "", err
		}
		pw = line
	}

	// EVALUATE
	if err := validatePasswordInput(pw, "password"); err != nil {
		logger.Warn("Invalid password input", zap.Error(err))
		return "", err
	}
	return pw, nil
}

// ReadLine reads the first line of r without its line ending.
func ReadLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("no input received")
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}
