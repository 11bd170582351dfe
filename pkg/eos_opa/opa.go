// pkg/eos_opa/opa.go

package eos_opa

import (
	"context"
	"os"
	"path/filepath"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	rego "github.com/open-policy-agent/opa/v1/rego"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DenyQuery is the rule an organisational policy file defines. Each message
// in the set blocks generation.
const DenyQuery = "data.pwgen.deny"

// EnforcePolicy evaluates the Rego file at policyPath against input and
// returns the deny messages, empty when the policy allows it. A file that
// does not define data.pwgen.deny allows everything.
func EnforcePolicy(ctx context.Context, policyPath string, input map[string]any) ([]string, error) {
	ctx, span := telemetry.Start(ctx, "OPA.EnforcePolicy",
		attribute.String("policy", filepath.Base(policyPath)),
	)
	defer span.End()
	log := otelzap.Ctx(ctx)

	src, err := os.ReadFile(policyPath)
	if err != nil {
		log.Error("Read policy file failed", zap.String("path", policyPath), zap.Error(err))
		return nil, eos_err.NewFilesystemError("failed to read policy file "+policyPath, err,
			"check the path passed to --policy-file")
	}

	query, err := rego.New(
		rego.Query(DenyQuery),
		rego.Module(filepath.Base(policyPath), string(src)),
	).PrepareForEval(ctx)
	if err != nil {
		log.Error("Policy compilation failed", zap.String("path", policyPath), zap.Error(err))
		return nil, eos_err.NewValidationErrorWithCause("policy file does not compile", err,
			"policies use Rego v1 syntax, e.g. `deny contains msg if { ... }`")
	}

	rs, err := query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, eos_err.WrapPolicyError(cerr.Wrapf(err, "evaluate %s", policyPath))
	}

	var messages []string
	for _, result := range rs {
		for _, expr := range result.Expressions {
			values, ok := expr.Value.([]interface{})
			if !ok {
				return nil, eos_err.NewValidationError(
					DenyQuery+" must be a set of strings",
					"declare the rule as `deny contains msg if { ... }`")
			}
			for _, v := range values {
				msg, ok := v.(string)
				if !ok {
					return nil, eos_err.NewValidationError(DenyQuery + " produced a non-string message")
				}
				messages = append(messages, msg)
			}
		}
	}

	span.SetAttributes(attribute.Int("denials", len(messages)))
	if len(messages) > 0 {
		log.Info("Policy denied request", zap.Strings("reasons", messages))
	}
	return messages, nil
}

// Enforce wraps EnforcePolicy, turning any deny message into a validation
// error.
func Enforce(ctx context.Context, policyPath string, input map[string]any) error {
	messages, err := EnforcePolicy(ctx, policyPath, input)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}
	return eos_err.NewValidationError("password policy denied the request: "+messages[0], messages...)
}
