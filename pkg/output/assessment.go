package output

import (
	"fmt"
	"io"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
)

// Assessment is the strength report for one password. The password itself
// is never part of it.
type Assessment struct {
	Length   int    `json:"length" yaml:"length"`
	Score    int    `json:"score" yaml:"score"`
	Strength string `json:"strength" yaml:"strength"`
}

// WriteAssessment renders a. Plain output is the label alone so scripts can
// compare it directly.
func WriteAssessment(w io.Writer, format Format, a Assessment) error {
	switch format {
	case FormatJSON:
		return JSONTo(w, a)
	case FormatYAML:
		return YAMLTo(w, a)
	case FormatPlain, "":
		_, err := fmt.Fprintln(w, a.Strength)
		return err
	}
	return eos_err.NewValidationError(fmt.Sprintf("unknown output format %q", format))
}
