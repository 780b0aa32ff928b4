package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/esslend-store/internal/anomaly"
	"github.com/xtding233/esslend-store/internal/shift"
)

var reveal bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Work a shift from the terminal",
	Long: `Each loop, decide whether the store hides an anomaly:

  a, anomaly   turn back to the entrance (anomaly spotted)
  c, clear     walk on to the exit (nothing wrong)
  q, quit      leave the shift

A correct call advances the clock by the configured increment; a wrong one
sends you back to 00:00. Reach the win threshold to survive the night.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, catalog, rng, err := loadEngine()
		if err != nil {
			return err
		}
		sel := anomaly.NewSelector(catalog, rng, logger)
		m, err := shift.New(cfg, sel, shift.WithRNG(rng), shift.WithLogger(logger))
		if err != nil {
			return err
		}
		return runPlay(m, cmd.InOrStdin(), cmd.OutOrStdout(), reveal)
	},
}

func init() {
	playCmd.Flags().BoolVar(&reveal, "reveal", false, "show anomaly status and ids in the HUD")
}

// runPlay is the host loop: one line of input is one trigger-zone event.
func runPlay(m *shift.Machine, in io.Reader, out io.Writer, reveal bool) error {
	effs, err := m.StartNewShift()
	if err != nil {
		return err
	}
	render(out, m, effs, reveal)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		var reported bool
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "a", "anomaly":
			reported = true
		case "c", "clear":
			reported = false
		case "q", "quit":
			fmt.Fprintf(out, "Left the shift at %s.\n", m.TimeString())
			return nil
		case "":
			continue
		default:
			fmt.Fprintln(out, "a = anomaly, c = clear, q = quit")
			continue
		}

		effs, err := m.ProcessPlayerDecision(reported)
		if err != nil {
			logger.Error("decision rejected", zap.Error(err))
			return err
		}
		render(out, m, effs, reveal)
		if m.Complete() {
			return nil
		}
	}
}

func render(out io.Writer, m *shift.Machine, effs []shift.Effect, reveal bool) {
	for _, e := range effs {
		switch e.Kind {
		case shift.EffectShiftStarted:
			fmt.Fprintln(out, "--- New Shift Started ---")
		case shift.EffectShiftReset:
			fmt.Fprintf(out, "Wrong call. The clock falls back from %s.\n", e.Time)
		case shift.EffectTimeAdvanced:
			fmt.Fprintln(out, "Correct.")
		case shift.EffectAnomalySpawned:
			if reveal {
				fmt.Fprintf(out, "[spawn] %s (%s) %s\n", e.Anomaly.ID, e.Anomaly.Tier, e.Anomaly.Description)
			}
		case shift.EffectShiftComplete:
			fmt.Fprintln(out, "--- Shift Complete! --- You survived.")
		}
	}
	fmt.Fprintf(out, "Time: %s\n", m.TimeString())
	if reveal {
		fmt.Fprintf(out, "Status: %s\n", m.StatusLabel())
	}
}
