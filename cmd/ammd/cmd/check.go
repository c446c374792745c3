package cmd

import (
	"github.com/spf13/cobra"
)

// CheckCmd runs every registered invariant against the latest state
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ledger and pool invariants",
		Long: `Check runs the asset-supply, reserve-backing and locked-liquidity invariants
against the latest committed state and exits non-zero if any is broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}

			a, _, cleanup, err := c.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			results, checkErr := a.CheckInvariants()
			if err := printOutput(cmd, c, map[string]interface{}{
				"height":     a.LastBlockHeight(),
				"invariants": results,
			}); err != nil {
				return err
			}
			return checkErr
		},
	}
}
