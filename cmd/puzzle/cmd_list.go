package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the puzzle catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, repo, store, err := openApp()
		if err != nil {
			return err
		}
		defer store.Close()

		today := repo.PuzzleForDate(time.Now())
		for _, p := range repo.All() {
			marker := " "
			if p.ID == today.ID {
				marker = "*"
			}
			moves := 1
			if p.IsChain() {
				moves = len(p.Moves)
			}
			fmt.Printf("%s %-24s %-12s %-7s %d move(s)\n",
				marker, p.ID, p.Type, p.Difficulty, moves)
		}
		fmt.Println("\n* = today's puzzle")
		return nil
	},
}
