// Package cli provides shared helpers for voxjson commands.
//
// This package includes:
//   - Result rendering (JSON, YAML, raw)
//   - Terminal message printing (success, warning, error)
//   - Human-readable size formatting
//
// Commands render structured results through [Output] so that a
// profile section prints the same way whether it goes to a terminal
// or into a pipe:
//
//	cli.Output(section, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	})
package cli
