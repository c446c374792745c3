package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/paw-chain/pawdex/internal/eventlog"
)

const (
	flagKind       = "kind"
	flagLimit      = "limit"
	flagFromHeight = "from-height"
)

// EventsCmd lists journaled events, newest first
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List committed events from the journal",
		Example: `  $ ammd events --kind swapped --limit 20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			if !c.Config.Journal.Enabled {
				return errors.New("event journal is disabled (journal.enabled = false)")
			}

			var filter eventlog.Filter
			filter.Kind, _ = cmd.Flags().GetString(flagKind)
			filter.Limit, _ = cmd.Flags().GetInt(flagLimit)
			filter.FromHeight, _ = cmd.Flags().GetInt64(flagFromHeight)

			journal, err := eventlog.Open(cmd.Context(), c.Config.Journal.Path)
			if err != nil {
				return err
			}
			defer journal.Close()

			records, err := journal.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printOutput(cmd, c, map[string]interface{}{"events": records})
		},
	}

	cmd.Flags().String(flagKind, "", "only events of this type (pool_created, liquidity_added, liquidity_removed, swapped)")
	cmd.Flags().Int(flagLimit, eventlog.DefaultLimit, "maximum number of events")
	cmd.Flags().Int64(flagFromHeight, 0, "only events at or above this height")
	return cmd
}
