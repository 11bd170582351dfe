// pkg/config/schema.go

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_cue"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
)

// configSchema is closed, so misspelled keys are rejected instead of ignored.
const configSchema = `
#Config: {
	length?:          int
	upper?:           bool
	lower?:           bool
	digits?:          bool
	symbols?:         bool
	avoid_ambiguous?: bool
	count?:           int & >=1 & <=1000
	output?:          "plain" | "json" | "yaml"
	policy_file?:     string
}
`

// ValidateFile checks a YAML or JSON config file against the schema. Other
// formats are left to struct validation.
func ValidateFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return eos_err.NewFilesystemError("failed to read config file", err)
	}
	return ValidateYAML(path, data)
}

// ValidateYAML checks data against the config schema.
func ValidateYAML(name string, data []byte) error {
	if err := eos_cue.ValidateYAML(configSchema, "#Config", name, data); err != nil {
		return eos_err.NewValidationErrorWithCause("invalid config file "+name, err,
			"allowed keys: "+strings.Join(Keys, ", "),
			"count must be between 1 and 1000",
			"output must be one of plain, json, yaml")
	}
	return nil
}
