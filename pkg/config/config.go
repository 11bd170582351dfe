// pkg/config/config.go

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the user's generation defaults and output preferences.
// Length and class selection are not validated here; Generate owns those
// rules so that its error kinds reach the user unchanged.
type Config struct {
	Length         int    `mapstructure:"length" yaml:"length"`
	Upper          bool   `mapstructure:"upper" yaml:"upper"`
	Lower          bool   `mapstructure:"lower" yaml:"lower"`
	Digits         bool   `mapstructure:"digits" yaml:"digits"`
	Symbols        bool   `mapstructure:"symbols" yaml:"symbols"`
	AvoidAmbiguous bool   `mapstructure:"avoid_ambiguous" yaml:"avoid_ambiguous"`
	Count          int    `mapstructure:"count" yaml:"count" validate:"gte=1,lte=1000"`
	Output         string `mapstructure:"output" yaml:"output" validate:"oneof=plain json yaml"`
	PolicyFile     string `mapstructure:"policy_file" yaml:"policy_file" validate:"omitempty,file"`
}

// Keys are the config keys flags may bind to.
var Keys = []string{
	"length", "upper", "lower", "digits", "symbols", "avoid_ambiguous",
	"count", "output", "policy_file",
}

// Policy extracts the generation policy.
func (c Config) Policy() password.Policy {
	return password.Policy{
		Length:         c.Length,
		IncludeUpper:   c.Upper,
		IncludeLower:   c.Lower,
		IncludeDigits:  c.Digits,
		IncludeSymbols: c.Symbols,
		AvoidAmbiguous: c.AvoidAmbiguous,
	}
}

var validate = validator.New()

// Loader resolves Config from defaults, config file, .env, PWGEN_* env and
// bound flags, in increasing precedence.
type Loader struct {
	v        *viper.Viper
	explicit string
}

// NewLoader returns a Loader. explicitPath may be empty to search the XDG
// config directory.
func NewLoader(v *viper.Viper, explicitPath string) *Loader {
	if v == nil {
		v = viper.New()
	}
	return &Loader{v: v, explicit: explicitPath}
}

// Viper exposes the underlying instance so commands can bind flags.
func (l *Loader) Viper() *viper.Viper { return l.v }

// ConfigFileUsed is the config file that was read, or "".
func (l *Loader) ConfigFileUsed() string { return l.v.ConfigFileUsed() }

// Load reads every source and returns a validated Config.
func (l *Loader) Load() (*Config, error) {
	log := zap.L().Named("config")

	setDefaults(l.v)

	l.v.SetEnvPrefix(shared.EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()

	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	envFile := filepath.Join(l.configDir(), shared.EnvFileName)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, eos_err.NewFilesystemError("failed to load "+envFile, err,
				"check the file uses KEY=value lines")
		}
		log.Debug("Loaded env file", zap.String("path", envFile))
	}

	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	log.Debug("Configuration loaded",
		zap.String("config_file", l.ConfigFileUsed()),
		zap.Int("length", cfg.Length),
		zap.Int("count", cfg.Count),
		zap.String("output", cfg.Output))
	return cfg, nil
}

// Watch re-decodes the config file whenever it changes and hands the result
// to onChange. It reports false when no config file is in use.
func (l *Loader) Watch(onChange func(*Config, error)) bool {
	if l.ConfigFileUsed() == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(l.decode())
	})
	l.v.WatchConfig()
	return true
}

func (l *Loader) readConfigFile() error {
	if l.explicit != "" {
		l.v.SetConfigFile(l.explicit)
	} else {
		l.v.SetConfigName(strings.TrimSuffix(shared.ConfigFileName, filepath.Ext(shared.ConfigFileName)))
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(xdg.ConfigDir())
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.explicit == "" && cerr.As(err, &notFound) {
			return nil
		}
		return eos_err.NewFilesystemError("failed to read config file", err,
			"check the path passed to --config",
			"check the file is valid YAML")
	}
	return nil
}

func (l *Loader) configDir() string {
	if used := l.ConfigFileUsed(); used != "" {
		return filepath.Dir(used)
	}
	return xdg.ConfigDir()
}

func (l *Loader) decode() (*Config, error) {
	if used := l.ConfigFileUsed(); used != "" {
		if err := ValidateFile(used); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, eos_err.NewValidationErrorWithCause("config values have the wrong type", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags on cfg and reports every failure at once.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !cerr.As(err, &fieldErrs) {
		return eos_err.NewInternalError("config validation could not run", err)
	}

	var result *multierror.Error
	for _, fe := range fieldErrs {
		result = multierror.Append(result,
			cerr.Newf("%s: failed %q check (value %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return eos_err.NewValidationErrorWithCause("invalid configuration", result.ErrorOrNil(),
		"count must be between 1 and 1000",
		"output must be one of plain, json, yaml",
		"policy_file must point to an existing file")
}

func setDefaults(v *viper.Viper) {
	p := password.DefaultPolicy()
	v.SetDefault("length", p.Length)
	v.SetDefault("upper", p.IncludeUpper)
	v.SetDefault("lower", p.IncludeLower)
	v.SetDefault("digits", p.IncludeDigits)
	v.SetDefault("symbols", p.IncludeSymbols)
	v.SetDefault("avoid_ambiguous", p.AvoidAmbiguous)
	v.SetDefault("count", 1)
	v.SetDefault("output", "plain")
	v.SetDefault("policy_file", "")
}
