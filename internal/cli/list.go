package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var actionsJSON bool

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List available actions",
	Args:  cobra.NoArgs,
	RunE:  runActions,
}

func init() {
	actionsCmd.Flags().BoolVar(&actionsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(actionsCmd)
}

// actionEntry is a registered action for display.
type actionEntry struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func runActions(cmd *cobra.Command, args []string) error {
	var entries []actionEntry
	for _, e := range registry.Entries() {
		entries = append(entries, actionEntry{Name: e.Name, Summary: e.Summary})
	}

	if actionsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Summary)
	}
	return w.Flush()
}
