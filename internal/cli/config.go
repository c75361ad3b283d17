package cli

import (
	"fmt"

	"github.com/bundlekit/bundle-utils/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.bundle-utils/config.yaml.

Keys:
  log.level              debug, info, warn or error
  mongodb.version        MongoDB release to download (e.g. 3.4.4)
  mongodb.url_template   download URL with @OS, @VERSION and @EXT placeholders`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		if len(args) == 1 {
			path = args[0]
		}

		result, err := config.ValidateFile(path)
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
	},
}
