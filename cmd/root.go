/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	eos "github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/telemetry"

	// Subcommands
	"github.com/CodeMonkeyCybersecurity/pwgen/cmd/create"
	"github.com/CodeMonkeyCybersecurity/pwgen/cmd/inspect"

	// Internal packages
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/logger"
)

// NewRootCmd builds the pwgen command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   shared.AppID,
		Short: "Generate random passwords and rate password strength",
		Long: `pwgen generates passwords from a character-class policy using the
operating system's cryptographic random source, and rates any password as
Weak, Medium or Strong.

Nothing is stored or sent anywhere. Logs never contain passwords.`,
		Version:       shared.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: eos.Wrap(func(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), "⚠️  No subcommand provided. Try `pwgen create password`.")
			return cmd.Help()
		}),
	}
	root.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/pwgen/config.yaml)")

	root.SetHelpCommand(newHelpCmd(root))
	for _, sub := range []*cobra.Command{
		create.NewCreateCmd(),
		inspect.NewInspectCmd(),
	} {
		root.AddCommand(sub)
	}
	return root
}

// newHelpCmd wraps help so that it can be invoked like a normal command.
func newHelpCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long:  "Displays help for pwgen or a specific subcommand.",
		RunE: eos.Wrap(func(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return root.Help()
			}
			c, _, err := root.Find(args)
			if err != nil || c == nil || c == root {
				return eos_err.NewValidationError("command not found: "+strings.Join(args, " "),
					"run `pwgen help` to list commands")
			}
			otelzap.Ctx(rc.Ctx).Debug("Help requested", zap.String("command", c.CommandPath()))
			return c.Help()
		}),
	}
}

// Run executes pwgen with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	log := logger.L()
	defer func() {
		if err := logger.Sync(); err != nil && !isSyncNoise(err) {
			fmt.Fprintf(stderr, "⚠️  Failed to flush logs: %v\n", err)
		}
	}()

	shutdown, err := telemetry.Init(shared.AppID)
	if err != nil {
		log.Warn("Telemetry disabled", zap.Error(err))
		shutdown = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("Telemetry shutdown failed", zap.Error(err))
		}
	}()

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err = root.Execute()
	code := eos_err.GetExitCode(err)
	if err != nil {
		eos_err.PrintError(stderr, "pwgen", err)
		log.Debug("CLI finished with error", zap.Int("exit_code", code))
	}
	return code
}

// Execute runs pwgen with the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// isSyncNoise matches the errors fsync returns for terminals.
func isSyncNoise(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}
