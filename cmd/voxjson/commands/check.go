package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxjson/voxjson/pkg/cli"
	"github.com/voxjson/voxjson/pkg/pipeline"
)

var checkProfileCmd = &cobra.Command{
	Use:   "check-profile",
	Short: "Check that the profile has its trained artifacts",
	Long: `Check the profile for the artifacts training produces.

Transcription and recognition need a pronunciation dictionary, a language
model, and an intent graph. Exits non-zero when any of them is missing.

Examples:
  voxjson check-profile
  voxjson -p ~/profiles/en-us check-profile`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}

		missing := pipeline.CheckTrained(p)
		if len(missing) == 0 {
			cli.PrintSuccess("profile %s is trained", p.Dir)
			return nil
		}
		for _, path := range missing {
			cli.PrintWarning("missing %s", path)
		}
		return fmt.Errorf("profile %s is missing %d trained artifact(s)", p.Dir, len(missing))
	},
}

func init() {
	rootCmd.AddCommand(checkProfileCmd)
}
