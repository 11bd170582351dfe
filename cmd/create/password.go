// cmd/create/password.go
package create

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/config"
	eos "github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_opa"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/form"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/telemetry"
)

// clipboard is replaced in tests.
var clipboard interaction.Clipboard = interaction.SystemClipboard{}

// NewPasswordCmd returns "create password".
func NewPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Long: `Generate one or more random passwords from a character-class policy.

Every password contains at least one character from each enabled class
(uppercase, lowercase, digits, symbols). Characters are drawn from the
operating system's cryptographic random source and shuffled.

Defaults come from $XDG_CONFIG_HOME/pwgen/config.yaml (or --config), a .env
file next to it, and PWGEN_* environment variables, in that order. Flags
override all of them. Boolean classes are on by default; disable one with
e.g. --symbols=false.

An optional Rego policy (--policy-file) may reject policies through
data.pwgen.deny rules before anything is generated.

Examples:
  pwgen create password
  pwgen create password --length 24 --symbols=false
  pwgen create password -c 5 --strength -o json
  pwgen create password --copy
  pwgen create password --interactive`,
		Aliases: []string{"pw", "pass"},
		Args:    cobra.NoArgs,
		RunE:    eos.Wrap(runCreatePassword),
	}

	def := password.DefaultPolicy()
	cli.AddIntFlag(cmd, "length", "l", def.Length, fmt.Sprintf("Password length (minimum %d)", password.MinLength))
	cli.AddBoolFlag(cmd, "upper", "", def.IncludeUpper, "Include uppercase letters")
	cli.AddBoolFlag(cmd, "lower", "", def.IncludeLower, "Include lowercase letters")
	cli.AddBoolFlag(cmd, "digits", "", def.IncludeDigits, "Include digits")
	cli.AddBoolFlag(cmd, "symbols", "", def.IncludeSymbols, "Include symbols ("+password.Symbols+")")
	cli.AddBoolFlag(cmd, "avoid-ambiguous", "", def.AvoidAmbiguous, "Leave out "+password.Ambiguous+" from letters and digits")
	cli.AddIntFlag(cmd, "count", "c", 1, "Number of passwords to generate")
	cli.AddStringFlag(cmd, "output", "o", string(output.FormatPlain), "Output format: plain, json or yaml", false)
	cli.AddStringFlag(cmd, "policy-file", "", "", "Rego policy evaluated before generating", false)
	cli.AddBoolFlag(cmd, "strength", "", false, "Show the strength of each password")
	cli.AddBoolFlag(cmd, "copy", "", false, "Copy the last password to the clipboard")
	cli.AddBoolFlag(cmd, "interactive", "i", false, "Open the interactive form")

	return cmd
}

func runCreatePassword(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	// ASSESS
	loader := config.NewLoader(viper.New(), cli.LookupString(cmd, "config"))
	if err := cli.BindFlagsToViper(cmd, loader.Viper(), config.Keys...); err != nil {
		return eos_err.NewInternalError("failed to bind flags", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	generate := newGenerateFunc(rc.Ctx, cfg.PolicyFile)

	if cli.GetBool(cmd, "interactive") {
		return runForm(rc, cmd, loader, cfg, generate)
	}

	// INTERVENE
	policy := cfg.Policy()
	showStrength := cli.GetBool(cmd, "strength")
	results := make([]output.Result, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		pw, err := generate(policy)
		if err != nil {
			return err
		}
		r := output.Result{Password: pw, Length: len([]rune(pw))}
		if showStrength {
			r.Strength = password.Estimate(pw).String()
		}
		results = append(results, r)
	}

	if err := output.Write(cmd.OutOrStdout(), format, results); err != nil {
		return cerr.Wrap(err, "failed to write passwords")
	}

	// EVALUATE
	log.Info("Passwords generated",
		zap.Int("count", len(results)),
		zap.Int("length", policy.Length),
		zap.Strings("classes", classNames(policy)),
		zap.Bool("avoid_ambiguous", policy.AvoidAmbiguous),
		zap.String("format", string(format)))

	if cli.GetBool(cmd, "copy") {
		copied, err := interaction.Copy(clipboard, results[len(results)-1].Password)
		if err != nil {
			return err
		}
		if copied {
			fmt.Fprintln(cmd.ErrOrStderr(), "📋 Password copied to clipboard")
		}
	}
	return nil
}

// newGenerateFunc checks the policy, applies the organisational Rego policy
// when one is configured, then generates. Used by both the command and the
// form.
func newGenerateFunc(ctx context.Context, policyFile string) form.GenerateFunc {
	return func(p password.Policy) (string, error) {
		if err := p.Validate(); err != nil {
			return "", eos_err.NewValidationErrorWithCause("cannot generate password", err)
		}
		if policyFile != "" {
			if err := eos_opa.Enforce(ctx, policyFile, p.AsMap()); err != nil {
				return "", err
			}
		}

		pw, err := password.Generate(p)
		if err != nil {
			return "", cerr.Wrap(err, "password generation failed")
		}
		telemetry.RecordGeneration(ctx, password.Estimate(pw).String(), p.Length)
		return pw, nil
	}
}

func runForm(rc *eos_io.RuntimeContext, cmd *cobra.Command, loader *config.Loader, cfg *config.Config, generate form.GenerateFunc) error {
	log := otelzap.Ctx(rc.Ctx)

	restore := logger.Quiet()
	defer restore()

	program := tea.NewProgram(
		form.New(cfg.Policy(), generate, clipboard),
		tea.WithContext(rc.Ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	watching := loader.Watch(func(c *config.Config, err error) {
		if err != nil {
			program.Send(form.DefaultsMsg{Err: err})
			return
		}
		program.Send(form.DefaultsMsg{Policy: c.Policy()})
	})
	log.Info("Starting interactive form", zap.Bool("watching_config", watching))

	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return eos_err.NewUserCancelledError("interactive form")
	}
	if err != nil {
		return cerr.Wrap(err, "interactive form failed")
	}
	if m, ok := final.(form.Model); ok {
		log.Info("Interactive form closed", zap.Bool("generated", m.Password() != ""))
	}
	return nil
}

func classNames(p password.Policy) []string {
	classes := p.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
