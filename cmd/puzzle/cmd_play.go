package main

import (
	"github.com/spf13/cobra"
)

var playID string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's puzzle (or a specific one by id)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(playID)
	},
}

func init() {
	playCmd.Flags().StringVar(&playID, "id", "", "play a specific puzzle instead of today's")
}
