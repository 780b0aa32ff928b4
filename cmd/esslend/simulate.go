package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xtding233/esslend-store/internal/sim"
)

var (
	simAccuracy float64
	simTrials   int
	simMax      int
	simGoal     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Estimate shift length for a player of given accuracy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, catalog, _, err := loadEngine()
		if err != nil {
			return err
		}
		st, err := sim.RunMonteCarlo(sim.SimParams{
			Shift:        cfg,
			Catalog:      catalog,
			Accuracy:     simAccuracy,
			MaxDecisions: simMax,
			Seed:         seed,
		}, sim.TrialGoal(simGoal), simTrials)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "goal=%s accuracy=%.2f trials=%d\n", simGoal, simAccuracy, simTrials)
		fmt.Fprintf(out, "mean=%.2f stddev=%.2f p50=%.1f p90=%.1f p99=%.1f capped=%d\n",
			st.Mean, st.StdDev, st.P50, st.P90, st.P99, st.Capped)
		return nil
	},
}

func init() {
	f := simulateCmd.Flags()
	f.Float64Var(&simAccuracy, "accuracy", 0.9, "probability the player judges a loop correctly")
	f.IntVar(&simTrials, "trials", 10000, "number of simulated shifts")
	f.IntVar(&simMax, "max-decisions", 10000, "decision cap per shift")
	f.StringVar(&simGoal, "goal", string(sim.GoalDecisionsToWin), "decisions_to_win or resets_to_win")
}
