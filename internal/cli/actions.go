package cli

import (
	"io"
	"os"

	"github.com/bundlekit/bundle-utils/internal/action"
	"github.com/bundlekit/bundle-utils/internal/action/mongodb"
	"github.com/bundlekit/bundle-utils/internal/action/post"
	"github.com/bundlekit/bundle-utils/internal/config"
	"github.com/bundlekit/bundle-utils/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Writers handed to actions; rebound to the running command's streams.
var (
	actionOut io.Writer = os.Stdout
	actionErr io.Writer = os.Stderr
)

var registry = newRegistry()

func init() {
	for _, e := range registry.Entries() {
		rootCmd.AddCommand(newActionCommand(e))
	}
}

func newRegistry() *action.Registry {
	r := action.NewRegistry()
	mustRegister(r, post.Name, "Send a JSON POST request and print the response", func() action.Action {
		return post.New(
			post.WithOutput(actionOut),
			post.WithDiagnostics(actionErr),
			post.WithLogger(actionLogger()),
		)
	})
	mustRegister(r, mongodb.Name, "Download the MongoDB installer for this OS", func() action.Action {
		return mongodb.New(
			mongodb.WithDiagnostics(actionErr),
			mongodb.WithLogger(actionLogger()),
			mongodb.WithVersion(config.MongoDBVersion()),
			mongodb.WithURLTemplate(config.MongoDBURLTemplate()),
		)
	})
	return r
}

func mustRegister(r *action.Registry, name, summary string, f action.Factory) {
	if err := r.Register(name, summary, f); err != nil {
		panic(err)
	}
}

func actionLogger() zerolog.Logger {
	return logging.New(actionErr, config.LogLevel())
}

// bindOutput points actions at cmd's output streams.
func bindOutput(cmd *cobra.Command) {
	actionOut = cmd.OutOrStdout()
	actionErr = cmd.ErrOrStderr()
}

// newActionCommand wraps a registry entry. Flag parsing is disabled so every
// argument, including --help, reaches the action untouched.
func newActionCommand(e action.Entry) *cobra.Command {
	name := e.Name
	cmd := &cobra.Command{
		Use:                name,
		Short:              e.Summary,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return registry.Run(name, args)
		},
	}
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		bindOutput(c)
		_ = registry.Help(name)
	})
	return cmd
}
