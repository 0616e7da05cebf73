package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how a command result is rendered.
type OutputFormat string

const (
	// FormatJSON renders as indented JSON (the default, pipe-friendly)
	FormatJSON OutputFormat = "json"
	// FormatYAML renders as YAML
	FormatYAML OutputFormat = "yaml"
	// FormatRaw writes strings and byte slices verbatim
	FormatRaw OutputFormat = "raw"
)

// ParseFormat validates an output format flag value.
// An empty string selects JSON.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatRaw:
		return FormatRaw, nil
	}
	return "", fmt.Errorf("unsupported output format %q (json, yaml, raw)", s)
}

// OutputOptions configures result rendering.
type OutputOptions struct {
	// Format is the output format (json, yaml, raw)
	Format OutputFormat

	// Writer is the destination (os.Stdout when nil)
	Writer io.Writer
}

// Output renders the result to the configured destination.
func Output(result any, opts OutputOptions) error {
	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}

	switch opts.Format {
	case FormatJSON, "":
		return outputJSON(w, result)
	case FormatYAML:
		return outputYAML(w, result)
	case FormatRaw:
		return outputRaw(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

func outputJSON(w io.Writer, result any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func outputYAML(w io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func outputRaw(w io.Writer, result any) error {
	switch v := result.(type) {
	case []byte:
		_, err := w.Write(v)
		return err
	case string:
		_, err := io.WriteString(w, v)
		return err
	default:
		return outputJSON(w, result)
	}
}

// Print helpers for terminal output

// PrintSuccess prints a success message with checkmark
func PrintSuccess(format string, args ...any) {
	fmt.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...any) {
	fmt.Printf("ℹ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...any) {
	fmt.Printf("⚠ "+format+"\n", args...)
}
