// cmd/inspect/strength.go
package inspect

import (
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/crypto"
	eos "github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
)

// NewStrengthCmd returns "inspect strength".
func NewStrengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate a password as Weak, Medium or Strong",
		Long: `Rate a password's strength.

The score adds one point each for a length of at least 8, 12 and 16
characters, and one point each for containing an uppercase letter, a
lowercase letter, a digit and a symbol. 0-3 is Weak, 4-5 Medium, 6-7 Strong.

Without an argument the password is read from the terminal without echo, or
as the first line of standard input when it is piped. Passing it as an
argument leaves it in your shell history.

Examples:
  pwgen inspect strength
  echo 'correct horse' | pwgen inspect strength
  pwgen inspect strength -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: eos.Wrap(runInspectStrength),
	}
	cli.AddStringFlag(cmd, "output", "o", string(output.FormatPlain), "Output format: plain, json or yaml", false)
	return cmd
}

func runInspectStrength(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	log := otelzap.Ctx(rc.Ctx)

	// ASSESS
	format, err := output.ParseFormat(cli.GetStringOrEmpty(cmd, "output"))
	if err != nil {
		return err
	}

	var pw string
	if len(args) == 1 {
		pw = args[0]
	} else {
		pw, err = readPassword(rc, cmd)
		if err != nil {
			return eos_err.NewValidationErrorWithCause("no password to inspect", err,
				"pass the password as an argument or pipe it on stdin")
		}
	}

	// INTERVENE
	a := output.Assessment{
		Length:   len([]rune(pw)),
		Score:    password.Score(pw),
		Strength: password.Estimate(pw).String(),
	}

	// EVALUATE
	log.Info("Password inspected",
		zap.String("password", crypto.Redact(pw)),
		zap.Int("score", a.Score),
		zap.String("strength", a.Strength))

	if err := output.WriteAssessment(cmd.OutOrStdout(), format, a); err != nil {
		return cerr.Wrap(err, "failed to write assessment")
	}
	return nil
}

func readPassword(rc *eos_io.RuntimeContext, cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return eos_io.ReadPassword(rc, f, cmd.ErrOrStderr(), "Password: ")
	}
	return eos_io.ReadLine(cmd.InOrStdin())
}
