package llm

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema constrains the shape of a model response. It is written in CUE;
// structs are open, so fields the model adds beyond the schema are
// tolerated and dropped on decode.
type Schema struct {
	name string

	mu     sync.Mutex // cue.Context is not safe for concurrent use
	ctx    *cue.Context
	schema cue.Value
}

// CompileSchema compiles CUE source into a Schema.
func CompileSchema(name, src string) (*Schema, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src, cue.Filename(name+".cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return &Schema{name: name, ctx: ctx, schema: v}, nil
}

// MustSchema is like CompileSchema but panics on error. Intended for
// package-level schema definitions.
func MustSchema(name, src string) *Schema {
	s, err := CompileSchema(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name used in error messages.
func (s *Schema) Name() string { return s.name }

// Validate checks a JSON document against the schema. Every constrained
// field must be present and concrete.
func (s *Schema) Validate(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.ctx.CompileBytes(data, cue.Filename(s.name+".json"))
	if err := doc.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOutput, s.name, err)
	}
	if err := s.schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s schema: %v", ErrInvalidOutput, s.name, err)
	}
	return nil
}
