// cmd/inspect/inspect.go
/*
Copyright © 2025 CODE MONKEY CYBERSECURITY git@cybermonkey.net.au

*/
package inspect

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	eos "github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_cli"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_io"
)

// NewInspectCmd returns the "inspect" command group.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   "Inspect secrets (e.g., password strength)",
		Long:    `The inspect command reports on existing secrets without storing or transmitting them.`,
		Aliases: []string{"read", "check"},
		RunE: eos.Wrap(func(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			otelzap.Ctx(rc.Ctx).Info("No subcommand provided for inspect", zap.String("command", cmd.Use))
			return cmd.Help()
		}),
	}
	cmd.AddCommand(NewStrengthCmd())
	return cmd
}
