// flappy is a tick-driven flyer-and-gates game for the terminal, the desktop
// and SSH, with a replay journal of every run.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy gui               - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy replays           - Browse and play back recorded runs
//	flappy verify <id>       - Re-simulate a recorded run headlessly
//	flappy config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set journal path (default: ~/.flappy/runs.db)
//	--config <path>      - Load engine constants from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination for play and replays (default: ~/.flappy/flappy.log)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - steer a flyer through scrolling gates",
	Long: `Flappy is a fixed-step flyer-and-gates game. The flyer falls under
gravity, every flap replaces its velocity with an upward impulse, and each
gate passed scores a point. Touching a gate or the top or bottom of the
playfield ends the run.

Every finished run is journaled and can be played back or verified.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  serve    - Start SSH server for remote play
  replays  - Browse recorded runs
  verify   - Re-simulate a recorded run
  config   - Print the default configuration

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy gui --config ./my-flappy.yaml
  flappy serve --ssh :2222
  flappy verify 12`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy",
			Level:           level,
		})
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to replay journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file used while play or replays own the terminal (empty = discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadParams loads and validates the engine constants.
func loadParams() (engine.Params, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return engine.Params{}, err
	}
	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return engine.Params{}, err
	}
	return params, nil
}

// openStore opens the journal; a failure only disables journaling.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay journal, runs will not be saved", "error", err)
		return nil
	}
	return store
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
