package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"
)

// Completer turns a typed input into a typed, validated model output.
type Completer[In, Out any] interface {
	Complete(ctx context.Context, in In) (Out, error)
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f CompleterFunc[In, Out]) Complete(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// FunctionSpec describes one prompt-backed function.
type FunctionSpec struct {
	Name   string
	Task   TaskType
	System string
	// Prompt is a text/template executed against the input value.
	Prompt string
	// Schema is CUE source the response must satisfy. Empty skips the check.
	Schema string
	// Context appends the input as indented JSON under the rendered prompt.
	Context bool
}

// Function is the Completer built from a FunctionSpec and a Client.
type Function[In, Out any] struct {
	client   Client
	spec     FunctionSpec
	prompt   *template.Template
	schema   *Schema
	validate SchemaValidator[Out]
}

// NewFunction compiles spec's prompt template and schema.
func NewFunction[In, Out any](client Client, spec FunctionSpec, validate SchemaValidator[Out]) (*Function[In, Out], error) {
	tmpl, err := template.New(spec.Name).Option("missingkey=error").Parse(spec.Prompt)
	if err != nil {
		return nil, fmt.Errorf("parsing prompt %s: %w", spec.Name, err)
	}
	var schema *Schema
	if spec.Schema != "" {
		schema, err = CompileSchema(spec.Name, spec.Schema)
		if err != nil {
			return nil, err
		}
	}
	return &Function[In, Out]{
		client:   client,
		spec:     spec,
		prompt:   tmpl,
		schema:   schema,
		validate: validate,
	}, nil
}

// MustFunction is like NewFunction but panics on a malformed spec.
func MustFunction[In, Out any](client Client, spec FunctionSpec, validate SchemaValidator[Out]) *Function[In, Out] {
	fn, err := NewFunction[In, Out](client, spec, validate)
	if err != nil {
		panic(err)
	}
	return fn
}

// Name returns the function name.
func (f *Function[In, Out]) Name() string { return f.spec.Name }

// Render produces the user prompt for in.
func (f *Function[In, Out]) Render(in In) (string, error) {
	var b bytes.Buffer
	if err := f.prompt.Execute(&b, in); err != nil {
		return "", fmt.Errorf("rendering prompt %s: %w", f.spec.Name, err)
	}
	if f.spec.Context {
		data, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding context for %s: %w", f.spec.Name, err)
		}
		b.WriteString("\n\nContext:\n")
		b.Write(data)
	}
	return b.String(), nil
}

// Complete renders the prompt, calls the model and decodes the response.
// Client errors are returned unchanged.
func (f *Function[In, Out]) Complete(ctx context.Context, in In) (Out, error) {
	var zero Out

	prompt, err := f.Render(in)
	if err != nil {
		return zero, err
	}

	resp, err := f.client.Generate(ctx, GenerateRequest{
		Task:         f.spec.Task,
		SystemPrompt: f.spec.System,
		UserPrompt:   prompt,
		JSON:         true,
	})
	if err != nil {
		return zero, err
	}

	return decodeOutput(resp.Text, f.schema, f.validate)
}
