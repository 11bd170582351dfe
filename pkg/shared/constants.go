// pkg/shared/constants.go

package shared

const (
	AppID = "pwgen"

	// #nosec G101 - This is a log file path, not a hardcoded credential
	LogsPWD = "./pwgen.log"
	LogsTmp = "/tmp/pwgen/pwgen.log"

	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
	EnvPrefix      = "PWGEN"
)

const (
	// Permission modes (in octal)
	DirPermOwner           = 0700
	FilePermOwnerReadWrite = 0600
)

// Version is overridden at build time with -ldflags "-X .../shared.Version=...".
var Version = "dev"
