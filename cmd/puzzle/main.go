package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tatianab/pitch-puzzle/internal/config"
	"github.com/tatianab/pitch-puzzle/internal/engine"
	"github.com/tatianab/pitch-puzzle/internal/models"
	"github.com/tatianab/pitch-puzzle/internal/progress"
	"github.com/tatianab/pitch-puzzle/internal/puzzles"
	"github.com/tatianab/pitch-puzzle/internal/tui"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Daily football tactics puzzle",
	Long: `A daily tactical puzzle on a simulated football pitch.

Each calendar day assigns one puzzle: study the frozen game situation
and pick the player who should receive the ball. Chain puzzles play out
over several linked moves. Three attempts per day; outcomes are saved
locally.

Run without arguments to play today's puzzle.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive TUI owns the terminal; keep logs quiet there
		// unless verbose is set.
		interactive := cmd.Name() == "puzzle" || cmd.Name() == "play"
		if interactive && !verbose {
			logger = zap.NewNop()
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay("")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(scaffoldCmd)
}

// openApp wires up the shared application pieces: configuration, the
// catalog (built-ins plus any authored files) and the progress store.
func openApp() (*config.Config, *puzzles.Repository, *progress.SQLiteStore, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, nil, err
	}
	extra, err := puzzles.LoadDir(cfg.PuzzleDir())
	if err != nil {
		return nil, nil, nil, err
	}
	repo := puzzles.NewRepository(extra...)
	store, err := progress.OpenSQLite(cfg.ProgressDB())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, repo, store, nil
}

func runPlay(id string) error {
	cfg, repo, store, err := openApp()
	if err != nil {
		return err
	}
	defer store.Close()

	var puzzle models.Puzzle
	if id == "" {
		puzzle = repo.TodaysPuzzle()
	} else {
		p, ok := repo.ByID(id)
		if !ok {
			return fmt.Errorf("no puzzle with id %q", id)
		}
		p.Date = time.Now().Format(puzzles.DateFormat)
		puzzle = p
	}

	session, err := engine.NewSession(context.Background(), puzzle, store,
		engine.WithDelays(cfg.TransitionDelay, cfg.MovementDelay),
		engine.WithLogger(logger))
	if err != nil {
		return err
	}
	defer session.Close()

	return tui.Run(session)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
