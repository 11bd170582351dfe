// cmd/create/create.go
package create

import (
	"github.com/spf13/cobra"

	eos "github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// NewCreateCmd returns the "create" command group.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create secrets (e.g., passwords)",
		Long:    `The create command generates new secrets. Use a subcommand such as "password".`,
		Aliases: []string{"new", "generate", "gen"},
		RunE: eos.Wrap(func(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			otelzap.Ctx(rc.Ctx).Info("No subcommand provided for create", zap.String("command", cmd.Use))
			return cmd.Help()
		}),
	}
	cmd.AddCommand(NewPasswordCmd())
	return cmd
}
