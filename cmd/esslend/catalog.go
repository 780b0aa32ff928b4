package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the effective anomaly catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, catalog, _, err := loadEngine()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "spawn chance %.2f, +%s per correct call, shift ends at %s (%d calls)\n",
			cfg.SpawnChance, cfg.TimeIncrement, cfg.WinThreshold, cfg.DecisionsToWin())
		for _, tier := range catalog.Tiers() {
			fmt.Fprintf(out, "\nTier %d (%s)\n", int(tier), tier)
			for _, d := range catalog.ByTier(tier) {
				fmt.Fprintf(out, "  %s  %s\n", d.ID, d.Description)
			}
		}
		return nil
	},
}
