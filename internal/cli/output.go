package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	flagJSON = "json"
	flagYAML = "yaml"
)

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatYAML
)

func formatOf(cmd *cobra.Command) outputFormat {
	if on, _ := cmd.Flags().GetBool(flagJSON); on {
		return formatJSON
	}
	if on, _ := cmd.Flags().GetBool(flagYAML); on {
		return formatYAML
	}
	return formatText
}

// render prints v as JSON or YAML when asked to, and text() otherwise.
func render(cmd *cobra.Command, v any, text func() string) error {
	out := cmd.OutOrStdout()
	switch formatOf(cmd) {
	case formatJSON:
		return writeJSON(out, v)
	case formatYAML:
		return writeYAML(out, v)
	default:
		_, err := fmt.Fprint(out, text())
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	// Round-trip through JSON so field names follow the json tags.
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
