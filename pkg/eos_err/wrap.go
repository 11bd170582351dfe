// pkg/eos_err/wrap.go

package eos_err

import (
	cerr "github.com/cockroachdb/errors"
)

// WrapPolicyError marks a failure inside policy evaluation itself, as
// opposed to a policy that denied the request.
func WrapPolicyError(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "OPA policy enforcement failed")
}
