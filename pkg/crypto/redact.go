// pkg/crypto/redact.go

package crypto

import "strings"

// Redact returns a string of asterisks of the same length as the input.
// Use for masking generated passwords in logs.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", len([]rune(s)))
}
