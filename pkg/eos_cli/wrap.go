// pkg/eos_cli/wrap.go

package eos_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_io"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/logger"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunFunc is a command body that receives a RuntimeContext.
type RunFunc func(rc *eos_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap ensures panic recovery, telemetry and logging around fn.
func Wrap(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.L()

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		rc := eos_io.NewContext(parent, cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		rc.Log.Debug("Command started",
			zap.String("path", cmd.CommandPath()),
			zap.Int("arg_count", len(args)))

		err = fn(rc, cmd, args)
		if err != nil && !eos_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
