// pkg/eos_cue/cue.go

package eos_cue

import (
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/encoding/yaml"
	cerr "github.com/cockroachdb/errors"
)

// ErrSchemaMismatch is returned when the document parses but does not
// satisfy the schema.
var ErrSchemaMismatch = cerr.New("cue validation failed")

// ValidateYAML unifies the YAML (or JSON) document data with definition def
// of the CUE source schema and requires the result to be concrete. name is
// used in error positions.
func ValidateYAML(schema, def, name string, data []byte) error {
	ctx := cuecontext.New()

	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return cerr.Wrap(err, "build cue schema")
	}
	defVal := schemaVal.LookupPath(cue.ParsePath(def))
	if !defVal.Exists() {
		return cerr.Newf("cue schema has no definition %s", def)
	}

	file, err := yaml.Extract(name, data)
	if err != nil {
		return cerr.Wrap(err, "parse yaml")
	}
	input := ctx.BuildFile(file)
	if err := input.Err(); err != nil {
		return cerr.Wrap(err, "build cue from yaml")
	}

	if err := defVal.Unify(input).Validate(cue.Concrete(true)); err != nil {
		return cerr.Wrap(ErrSchemaMismatch, strings.TrimSpace(cueerrors.Details(err, nil)))
	}
	return nil
}
