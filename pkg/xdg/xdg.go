// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

// ConfigDir is where pwgen looks for config.yaml and .env.
func ConfigDir() string {
	base := GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config"))
	return filepath.Join(base, shared.AppID)
}

func ConfigPath(file string) string {
	return filepath.Join(ConfigDir(), file)
}

func StatePath(file string) string {
	base := GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(os.Getenv("HOME"), ".local", "state"))
	return filepath.Join(base, shared.AppID, file)
}

// EnsureDir creates the parent directory of path, owner-only.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), shared.DirPermOwner)
}
