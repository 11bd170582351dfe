// Package output renders generated passwords for the terminal or for other
// programs.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
)

// Format names an output encoding.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts plain, json or yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPlain, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", eos_err.NewValidationError(
		fmt.Sprintf("unknown output format %q", s),
		"use --output plain, json or yaml")
}

// Result is one generated password. Strength is empty unless requested.
type Result struct {
	Password string `json:"password" yaml:"password"`
	Length   int    `json:"length" yaml:"length"`
	Strength string `json:"strength,omitempty" yaml:"strength,omitempty"`
}

// Write renders results to w. Plain output is one password per line, or a
// table when strength labels are present.
func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatJSON:
		return JSONTo(w, results)
	case FormatYAML:
		return YAMLTo(w, results)
	case FormatPlain, "":
		return writePlain(w, results)
	}
	return eos_err.NewValidationError(fmt.Sprintf("unknown output format %q", format))
}

func writePlain(w io.Writer, results []Result) error {
	withStrength := false
	for _, r := range results {
		if r.Strength != "" {
			withStrength = true
			break
		}
	}

	if !withStrength {
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Password); err != nil {
				return err
			}
		}
		return nil
	}

	table := NewTableTo(w, "PASSWORD", "LENGTH", "STRENGTH")
	for _, r := range results {
		table.AddRow(r.Password, strconv.Itoa(r.Length), r.Strength)
	}
	return table.Render()
}
