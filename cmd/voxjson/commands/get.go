package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"

	"github.com/voxjson/voxjson/pkg/profile"
)

var getQuery string

var getCmd = &cobra.Command{
	Use:   "get <path>...",
	Short: "Read one or more settings by dotted path",
	Long: `Read settings from the resolved profile by dotted path.

Each value is printed as JSON on its own line. A path that names no
setting is an error. With --query, a jq expression is evaluated against
the whole resolved document instead.

Examples:
  voxjson get speech-to-text.acoustic-model
  voxjson get audio.format.sample-rate-hertz voice-command.vad-mode
  voxjson get -q '.training | keys'`,
	Args: func(cmd *cobra.Command, args []string) error {
		if getQuery == "" && len(args) == 0 {
			return fmt.Errorf("requires at least one path or --query")
		}
		if getQuery != "" && len(args) > 0 {
			return fmt.Errorf("paths and --query are mutually exclusive")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}
		return runGet(cmd.OutOrStdout(), p, args, getQuery)
	},
}

func runGet(w io.Writer, p *profile.Profile, paths []string, query string) error {
	if query != "" {
		q, err := gojq.Parse(query)
		if err != nil {
			return fmt.Errorf("invalid jq expression %q: %w", query, err)
		}
		iter := q.Run(p.Doc)
		for {
			v, ok := iter.Next()
			if !ok {
				return nil
			}
			if err, ok := v.(error); ok {
				return fmt.Errorf("jq error: %w", err)
			}
			if err := printValue(w, v); err != nil {
				return err
			}
		}
	}

	for _, path := range paths {
		v, err := p.Get(path)
		if err != nil {
			return err
		}
		if err := printValue(w, v); err != nil {
			return err
		}
	}
	return nil
}

func printValue(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	getCmd.Flags().StringVarP(&getQuery, "query", "q", "", "jq expression evaluated against the resolved document")
	rootCmd.AddCommand(getCmd)
}
