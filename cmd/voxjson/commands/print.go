package commands

import (
	"github.com/spf13/cobra"

	"github.com/voxjson/voxjson/pkg/cli"
)

var printOutput string

var printProfileCmd = &cobra.Command{
	Use:   "print-profile",
	Short: "Print the fully-resolved profile settings",
	Long: `Print the profile settings after layering and variable resolution.

The output is the complete settings tree: shipped defaults, overlaid with
the profile's own document and any --setting overrides, with all session
variables substituted.

Examples:
  voxjson print-profile
  voxjson print-profile -o yaml
  voxjson -p ~/profiles/en-us print-profile | jq .audio`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		format, err := cli.ParseFormat(printOutput)
		if err != nil {
			return err
		}
		return cli.Output(p.Doc, cli.OutputOptions{
			Format: format,
			Writer: cmd.OutOrStdout(),
		})
	},
}

func init() {
	printProfileCmd.Flags().StringVarP(&printOutput, "output", "o", "json", "output format (json, yaml)")
	rootCmd.AddCommand(printProfileCmd)
}
