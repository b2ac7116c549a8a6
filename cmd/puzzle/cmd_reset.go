package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tatianab/pitch-puzzle/internal/puzzles"
)

var resetCmd = &cobra.Command{
	Use:   "reset [date]",
	Short: "Clear saved progress for a date (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().Format(puzzles.DateFormat)
		if len(args) == 1 {
			parsed, err := time.Parse(puzzles.DateFormat, args[0])
			if err != nil {
				return fmt.Errorf("date must be in %s form: %w", puzzles.DateFormat, err)
			}
			date = parsed.Format(puzzles.DateFormat)
		}

		_, _, store, err := openApp()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), date); err != nil {
			return err
		}
		logger.Info("progress cleared", zap.String("date", date))
		fmt.Printf("Progress for %s cleared.\n", date)
		return nil
	},
}
