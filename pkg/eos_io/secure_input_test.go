package eos_io

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ordinary", "Ab1!Ab1!", false},
		{"empty is allowed", "", false},
		{"tab is allowed", "a\tb", false},
		{"unicode", "пароль🔒", false},
		{"null byte", "a\x00b", true},
		{"escape", "a\x1b[31mb", true},
		{"c1 control", "a\u0085b", true},
		{"invalid utf8", "a\xffb", true},
		{"too long", strings.Repeat("a", MaxPasswordLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePasswordInput(tt.input, "password")
			if tt.wantErr {
				var ive *InputValidationError
				assert.ErrorAs(t, err, &ive)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("secret\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "secret", line)

	_, err = ReadLine(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadPasswordFromPipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte("Abcdefgh1234\n"), 0o600))
	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	var out bytes.Buffer
	rc := NewContext(context.Background(), "strength")
	pw, err := ReadPassword(rc, in, &out, "Password: ")
	require.NoError(t, err)
	assert.Equal(t, "Abcdefgh1234", pw)
	assert.Empty(t, out.String(), "no prompt when stdin is not a terminal")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
