package design

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// LoadError reports a design file that failed schema validation.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Load reads a YAML design file, checks it against the embedded CUE
// schema, and applies it on top of the default parameter set. Schema
// violations (wrong types, out-of-range values, unknown fields) surface
// before decoding so the error names the offending field rather than a
// downstream geometry failure.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read design file: %w", err)
	}
	return Parse(path, data)
}

// Parse validates and decodes design file contents. The filename is used
// only for error positions.
func Parse(filename string, data []byte) (Params, error) {
	if err := checkSchema(filename, data); err != nil {
		return Params{}, err
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("decode design file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, &LoadError{File: filename, Message: err.Error()}
	}
	return p, nil
}

// checkSchema unifies the design file with #Design from schema.cue.
func checkSchema(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal: compile design schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Design"))
	if !def.Exists() {
		return fmt.Errorf("internal: design schema missing #Design")
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return &LoadError{File: filename, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return &LoadError{File: filename, Message: cueerrors.Details(err, nil)}
	}

	unified := value.Unify(def)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &LoadError{File: filename, Message: cueerrors.Details(err, nil)}
	}
	return nil
}
