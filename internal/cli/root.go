package cli

import (
	"github.com/bundlekit/bundle-utils/internal/branding"
	"github.com/bundlekit/bundle-utils/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` runs small administrative actions, such as posting JSON to an
HTTP endpoint or downloading the MongoDB installer for this machine.

Run '` + branding.CLIName() + ` actions' to see what is available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		bindOutput(cmd)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}
