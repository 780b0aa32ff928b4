// Command esslend hosts a night shift in the terminal. It stands in for
// the 3D client: it reads the player's judgments and renders the HUD.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xtding233/esslend-store/internal/anomaly"
	"github.com/xtding233/esslend-store/internal/chance"
	"github.com/xtding233/esslend-store/internal/config"
	"github.com/xtding233/esslend-store/internal/shift"
)

var (
	// Global flags
	configPath string
	seed       uint64
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "esslend",
	Short:         "Esslend Store night shift",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are built in)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for reproducible runs (0 = crypto random)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(playCmd, simulateCmd, catalogCmd)
}

// loadEngine resolves config and builds the selector and machine options.
func loadEngine() (shift.Config, anomaly.Catalog, chance.RandomSource, error) {
	raw, err := config.Load(configPath)
	if err != nil {
		return shift.Config{}, anomaly.Catalog{}, nil, err
	}
	cfg, catalog, err := config.Resolve(raw)
	if err != nil {
		return shift.Config{}, anomaly.Catalog{}, nil, err
	}
	rng := chance.DefaultRNG()
	if seed != 0 {
		rng = chance.NewSeededRNG(seed)
	}
	return cfg, catalog, rng, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
