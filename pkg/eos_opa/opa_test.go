package eos_opa

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minLengthPolicy = `package pwgen

deny contains msg if {
	input.length < 20
	msg := sprintf("length %d is below the minimum of 20", [input.length])
}

deny contains "symbols are required" if {
	not input.include_symbols
}
`

func writePolicy(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.rego")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestEnforcePolicy(t *testing.T) {
	path := writePolicy(t, minLengthPolicy)

	tests := []struct {
		name   string
		policy password.Policy
		want   []string
	}{
		{
			name:   "allowed",
			policy: password.Policy{Length: 24, IncludeLower: true, IncludeSymbols: true},
			want:   nil,
		},
		{
			name:   "too short",
			policy: password.Policy{Length: 16, IncludeLower: true, IncludeSymbols: true},
			want:   []string{"length 16 is below the minimum of 20"},
		},
		{
			name:   "two denials",
			policy: password.Policy{Length: 8, IncludeLower: true},
			want:   []string{"length 8 is below the minimum of 20", "symbols are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnforcePolicy(context.Background(), path, tt.policy.AsMap())
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestEnforcePolicy_UndefinedRuleAllows(t *testing.T) {
	path := writePolicy(t, "package other\n\nallow := true\n")

	got, err := EnforcePolicy(context.Background(), path, password.DefaultPolicy().AsMap())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnforcePolicy_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := EnforcePolicy(context.Background(), filepath.Join(t.TempDir(), "none.rego"), nil)
		require.Error(t, err)
		assert.Equal(t, eos_err.CategorySystem, eos_err.CategoryOf(err))
	})

	t.Run("bad syntax", func(t *testing.T) {
		path := writePolicy(t, "package pwgen\n\ndeny contains msg if {\n")
		_, err := EnforcePolicy(context.Background(), path, nil)
		require.Error(t, err)
		assert.Equal(t, eos_err.CategoryValidation, eos_err.CategoryOf(err))
	})

	t.Run("deny is not a set", func(t *testing.T) {
		path := writePolicy(t, "package pwgen\n\ndeny := true\n")
		_, err := EnforcePolicy(context.Background(), path, nil)
		require.Error(t, err)
		assert.Equal(t, eos_err.CategoryValidation, eos_err.CategoryOf(err))
	})
}

func TestEnforce(t *testing.T) {
	path := writePolicy(t, minLengthPolicy)

	err := Enforce(context.Background(), path, password.Policy{Length: 30, IncludeSymbols: true}.AsMap())
	assert.NoError(t, err)

	err = Enforce(context.Background(), path, password.Policy{Length: 12, IncludeSymbols: true}.AsMap())
	require.Error(t, err)
	assert.Equal(t, 2, eos_err.GetExitCode(err))
	assert.Contains(t, err.Error(), "length 12 is below the minimum of 20")
}
