// pkg/cli/cli.go
//
// Flag helpers shared by pwgen commands. Flags registered here are bound to
// a Viper instance so that config files, PWGEN_* environment variables and
// command-line flags resolve through one lookup.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AddStringFlag adds a string flag and optionally marks as required.
// Note: Errors marking flag as required are logged but don't fail - Cobra will validate at runtime.
func AddStringFlag(cmd *cobra.Command, name, shorthand, def, help string, required bool) {
	cmd.Flags().StringP(name, shorthand, def, help)
	if required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to mark flag %s as required: %v\n", name, err)
		}
	}
}

// AddBoolFlag adds a boolean flag.
func AddBoolFlag(cmd *cobra.Command, name, shorthand string, def bool, help string) {
	cmd.Flags().BoolP(name, shorthand, def, help)
}

// AddIntFlag adds an int flag.
func AddIntFlag(cmd *cobra.Command, name, shorthand string, def int, help string) {
	cmd.Flags().IntP(name, shorthand, def, help)
}

// ConfigKey maps a flag name onto its config key ("avoid-ambiguous" -> "avoid_ambiguous").
func ConfigKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

// BindFlagsToViper binds every flag of cmd whose config key is in keys.
// Unchanged flags do not shadow config file or environment values.
func BindFlagsToViper(cmd *cobra.Command, v *viper.Viper, keys ...string) error {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	var result error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := ConfigKey(f.Name)
		if len(wanted) > 0 && !wanted[key] {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// GetStringOrEmpty returns the string value or empty string if error.
func GetStringOrEmpty(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to get flag %s: %v\n", name, err)
		return ""
	}
	return val
}

// GetBool returns the bool value, false if the flag is missing.
func GetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// LookupString returns the value of a flag that may be inherited from a
// parent command, or "" if no such flag exists.
func LookupString(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	if f == nil {
		return ""
	}
	return f.Value.String()
}
