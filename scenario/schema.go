package scenario

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// fixtureSchema constrains the shape of a fixture document. Cell values
// are limited to the variants the double's row cells support; in
// particular a float cell fails validation here, before decoding.
const fixtureSchema = `
#Cell: string | int | bool | null

#Query: {
	target: string & != ""
	projection?: [...string]
	default_projection?: [...string]
	any_projection?: bool
	selection?: string
	selection_args?: [...string]
	any_selection?: bool
	sort_order?: string
	any_sort_order?: bool
	rows?: [...[...#Cell]]
}

#TypeQuery: {
	target: string & != ""
	type:   string & != ""
}

#Scenario: {
	name:         string & != ""
	description?: string
	queries?: [...#Query]
	type_queries?: [...#TypeQuery]
}
`

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
	cueCtx      *cue.Context
)

// compiledSchema compiles the embedded schema once; it is immutable
// afterwards and safe to unify against repeatedly.
func compiledSchema() (*cue.Context, cue.Value) {
	schemaOnce.Do(func() {
		cueCtx = cuecontext.New()
		schemaValue = cueCtx.CompileString(fixtureSchema).LookupPath(cue.ParsePath("#Scenario"))
	})
	return cueCtx, schemaValue
}

// validateSchema checks raw fixture bytes against the embedded CUE schema.
func validateSchema(name string, data []byte) error {
	ctx, schema := compiledSchema()
	if err := schema.Err(); err != nil {
		return fmt.Errorf("fixture schema is broken: %w", err)
	}

	file, err := cueyaml.Extract(name, data)
	if err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return err
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}
