// Package cli wires the raillock command line: flags choose the initial
// scenario, then the interactive session takes over.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veletrack/raillock/core"
	"github.com/veletrack/raillock/internal/logger"
	"github.com/veletrack/raillock/internal/session"
	"github.com/veletrack/raillock/scenario"
)

var (
	// scenarioPath points to a YAML scenario file; empty means no file.
	scenarioPath string
	// trains/tracks/maxUnits describe a random starting scenario when
	// trains is positive.
	trains   int
	tracks   int
	maxUnits int
	// seed makes the random scenario reproducible when non-zero.
	seed int64
	// logLevel selects the zap level for the CLI log stream.
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "raillock",
		Short: "Interactive railway deadlock simulator.",
		Long: `raillock simulates trains competing for multi-unit track sections and
demonstrates both deadlock-handling strategies over the same live state:
avoidance (Banker's algorithm) and detection/recovery (wait-for graph
cycle analysis with termination or preemption). Checkpoints make every
destructive action undoable.

The simulator starts from the built-in sample scenario unless --scenario
or --trains selects another starting state.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			level, _ := logger.ParseLevel(logLevel)
			log := logger.New(zap.NewAtomicLevelAt(level))
			defer func() { _ = log.Sync() }()

			initial, err := initialState()
			if err != nil {
				return err
			}

			ss, err := session.New(initial, os.Stdin, os.Stdout, log)
			if err != nil {
				return err
			}

			return ss.Run()
		},
	}
)

// initialState resolves the starting scenario from the flags: an explicit
// file wins, then a random layout, then the built-in sample.
func initialState() (*core.State, error) {
	if scenarioPath != "" {
		return scenario.Load(scenarioPath)
	}
	if trains > 0 {
		opts := []scenario.RandomOption{}
		if seed != 0 {
			opts = append(opts, scenario.WithSeed(seed))
		}

		return scenario.Random(trains, tracks, maxUnits, opts...)
	}

	return scenario.Sample(), nil
}

// Execute runs the raillock CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&scenarioPath, "scenario", "f", "", "path to a YAML scenario file")
	rootCmd.Flags().IntVarP(&trains, "trains", "n", 0, "random scenario: number of trains")
	rootCmd.Flags().IntVarP(&tracks, "tracks", "m", 6, "random scenario: number of track sections")
	rootCmd.Flags().IntVarP(&maxUnits, "units", "u", 2, "random scenario: max units per track draw")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random scenario: RNG seed (0 = clock)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level: debug, info, warn, error")
}
