package commands

import (
	"log/slog"

	"github.com/ppiankov/i18nspectre/internal/config"
	"github.com/ppiankov/i18nspectre/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "i18nspectre",
	Short: "i18nspectre - hardcoded string finder for JSX/TSX",
	Long: `i18nspectre scans component-markup source trees for literal display text
and literal attribute values that bypass the translation layer, and prints
each occurrence as a highlighted code frame for internationalization review.

Part of the Spectre family of codebase cleanup tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	rootCmd.Version = v
	return rootCmd.Execute()
}

// GetVersion returns the current version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
