package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voxjson/voxjson/pkg/profile"
)

var (
	// Global flags
	profilePath string
	settings    []string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "voxjson",
	Short: "Layered voice profile settings tool",
	Long: `voxjson - Inspect and manage layered voice profile settings.

A profile is a directory holding a profile.yml override document plus the
trained artifacts the voice pipeline needs (dictionary, language model,
intent graph). Settings are layered: shipped defaults, then profile.yml,
then --setting overrides, with session variables like ${profile_dir}
resolved last.

Examples:
  # Print the resolved settings of the default profile
  voxjson print-profile

  # Read a single setting from a specific profile
  voxjson -p ~/profiles/en-us get speech-to-text.acoustic-model

  # Override a setting for one invocation
  voxjson -s 'voice-command.vad-mode=2' print-profile

  # Check and fetch missing trained artifacts
  voxjson check-profile
  voxjson fetch-profile --from s3://voxjson-assets/en-us base_dictionary.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debugMode {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "profile directory or settings file")
	rootCmd.PersistentFlags().StringArrayVarP(&settings, "setting", "s", nil, "override a setting (path=value, repeatable)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "print debug messages")
}

// loadProfile opens the profile selected by the global flags. The --profile
// flag may name either a profile directory or a settings file inside one; no
// flag selects the default profile directory.
func loadProfile() (*profile.Profile, error) {
	opts := &profile.Options{}
	for _, s := range settings {
		set, err := profile.ParseSetting(s)
		if err != nil {
			return nil, err
		}
		opts.Settings = append(opts.Settings, set)
	}

	dir := profilePath
	switch {
	case dir == "":
		var err error
		dir, err = profile.DefaultDir()
		if err != nil {
			return nil, err
		}
	default:
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			opts.ProfilePath = dir
			dir = filepath.Dir(dir)
		}
	}

	return profile.Open(dir, opts)
}
