package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/scoring"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// methodValue is a pflag.Value restricted to the scoring methods.
type methodValue struct {
	method *scoring.Method
}

var _ pflag.Value = methodValue{}

func newMethodValue(def scoring.Method, m *scoring.Method) methodValue {
	*m = def
	return methodValue{method: m}
}

func (v methodValue) String() string {
	if v.method == nil {
		return ""
	}
	return string(*v.method)
}

func (v methodValue) Set(s string) error {
	m, err := scoring.ParseMethod(s)
	if err != nil {
		return err
	}
	*v.method = m
	return nil
}

func (methodValue) Type() string { return "method" }

// requireFlags fails when any of names was not set on the command line.
func requireFlags(fs *pflag.FlagSet, names ...string) error {
	var missing []string
	for _, n := range names {
		if !fs.Changed(n) {
			missing = append(missing, "--"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) not set: %s", strings.Join(missing, ", "))
	}
	return nil
}

// requireAI fails with ErrAIDisabled when svc is nil.
func requireAI(svc any) error {
	if svc == nil {
		return ErrAIDisabled
	}
	return nil
}

// parseInts parses every arg as a non-negative integer.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid count %q: want a non-negative integer", a)
		}
		out[i] = n
	}
	return out, nil
}

// readYAMLFile decodes a YAML (or JSON) file into v.
func readYAMLFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// textArg joins args, or reads --file when it is set.
func textArg(cmd *cobra.Command, args []string, file string) (string, error) {
	if file != "" {
		if file == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			return string(data), err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("pass text as arguments or use --file")
	}
	return strings.Join(args, " "), nil
}
