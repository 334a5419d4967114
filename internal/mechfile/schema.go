package mechfile

import (
	_ "embed"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE string

// validateSchema unifies the raw YAML document with the embedded CUE
// schema and reports every violation. Validation happens before
// decoding so malformed files fail with positions rather than zero
// values.
func validateSchema(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: "internal schema error: " + err.Error()}
	}

	doc, err := cueyaml.Extract(filename, data)
	if err != nil {
		return &LoadError{Code: ErrCodeDecode, Message: err.Error()}
	}
	value := ctx.BuildFile(doc)
	if err := value.Err(); err != nil {
		return &LoadError{Code: ErrCodeDecode, Message: err.Error()}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var issues []string
		for _, e := range cueerrors.Errors(err) {
			issues = append(issues, cueerrors.Details(e, nil))
		}
		return &LoadError{Code: ErrCodeSchema, Message: strings.Join(issues, "; ")}
	}
	return nil
}
