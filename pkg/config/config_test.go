package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// isolate points XDG_CONFIG_HOME at an empty directory so the developer's
// own config never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader(viper.New(), "").Load()
	require.NoError(t, err)

	assert.Equal(t, password.DefaultPolicy(), cfg.Policy())
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, "plain", cfg.Output)
	assert.Empty(t, cfg.PolicyFile)
}

func TestLoad_ConfigFileAndEnvPrecedence(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "length: 24\nsymbols: false\noutput: json\n")

	t.Setenv("PWGEN_LENGTH", "32")

	l := NewLoader(viper.New(), path)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.ConfigFileUsed())
	assert.Equal(t, 32, cfg.Length, "env overrides file")
	assert.False(t, cfg.Symbols, "file overrides default")
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Upper)
}

func TestLoad_SearchesXDGConfigDir(t *testing.T) {
	home := isolate(t)
	appDir := filepath.Join(home, "pwgen")
	require.NoError(t, os.MkdirAll(appDir, 0700))
	writeFile(t, appDir, "config.yaml", "count: 3\n")

	cfg, err := NewLoader(viper.New(), "").Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoad_DotEnvNextToConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "length: 20\n")
	writeFile(t, dir, ".env", "PWGEN_OUTPUT=yaml\n")
	t.Setenv("PWGEN_OUTPUT", "")
	require.NoError(t, os.Unsetenv("PWGEN_OUTPUT"))

	cfg, err := NewLoader(viper.New(), path).Load()
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, 20, cfg.Length)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "lenght: 20\n"},
		{name: "count out of range", body: "count: 0\n"},
		{name: "bad output format", body: "output: xml\n"},
		{name: "wrong type", body: "upper: maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, t.TempDir(), "config.yaml", tt.body)

			_, err := NewLoader(viper.New(), path).Load()
			require.Error(t, err)
			assert.Equal(t, eos_err.CategoryValidation, eos_err.CategoryOf(err))
			assert.Equal(t, 2, eos_err.GetExitCode(err))
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := NewLoader(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")).Load()
	require.Error(t, err)
	assert.Equal(t, eos_err.CategorySystem, eos_err.CategoryOf(err))
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := &Config{Length: 16, Count: 5000, Output: "xml", PolicyFile: "/does/not/exist.rego"}

	err := Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "count")
	assert.Contains(t, msg, "output")
	assert.Contains(t, msg, "policyfile")
}

func TestValidate_LengthLeftToGenerator(t *testing.T) {
	// Short lengths and empty class sets pass here; Generate rejects them.
	cfg := &Config{Length: 3, Count: 1, Output: "plain"}
	assert.NoError(t, Validate(cfg))
}

func TestValidateYAML(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "full config", body: "length: 20\nupper: true\nlower: true\ndigits: false\nsymbols: true\navoid_ambiguous: false\ncount: 2\noutput: plain\n"},
		{name: "json is yaml", body: `{"length": 12, "output": "json"}`},
		{name: "closed schema", body: "colour: red\n", wantErr: true},
		{name: "count bound", body: "count: 1001\n", wantErr: true},
		{name: "output enum", body: "output: toml\n", wantErr: true},
		{name: "syntax", body: "length: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYAML("config.yaml", []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateFile_SkipsOtherFormats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "anything = 1\n")
	assert.NoError(t, ValidateFile(path))
}

func TestWatch_NoConfigFile(t *testing.T) {
	isolate(t)
	l := NewLoader(viper.New(), "")
	_, err := l.Load()
	require.NoError(t, err)

	assert.False(t, l.Watch(func(*Config, error) {}))
}

type reload struct {
	cfg *Config
	err error
}

// replaceFile swaps body into path with a rename so the watcher sees one
// complete write instead of a truncate followed by the new content.
func replaceFile(t *testing.T, path, body string) {
	t.Helper()
	tmp := writeFile(t, t.TempDir(), "next.yaml", body)
	require.NoError(t, os.Rename(tmp, path))
}

func waitReload(t *testing.T, ch <-chan reload, match func(reload) bool) reload {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r := <-ch:
			if match(r) {
				return r
			}
		case <-timeout:
			t.Fatal("config change was not delivered")
			return reload{}
		}
	}
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "length: 20\n")

	l := NewLoader(viper.New(), path)
	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Length)

	ch := make(chan reload, 16)
	require.True(t, l.Watch(func(c *Config, err error) {
		select {
		case ch <- reload{cfg: c, err: err}:
		default:
		}
	}))

	t.Run("valid rewrite", func(t *testing.T) {
		replaceFile(t, path, "length: 24\ndigits: false\n")

		r := waitReload(t, ch, func(r reload) bool { return r.err == nil && r.cfg.Length == 24 })
		assert.False(t, r.cfg.Digits)
	})

	t.Run("invalid rewrite", func(t *testing.T) {
		replaceFile(t, path, "lenght: 30\n")

		r := waitReload(t, ch, func(r reload) bool { return r.err != nil })
		assert.Nil(t, r.cfg)
		assert.Equal(t, eos_err.CategoryValidation, eos_err.CategoryOf(r.err))
	})
}
