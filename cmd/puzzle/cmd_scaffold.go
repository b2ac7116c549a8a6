package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tatianab/pitch-puzzle/internal/creator"
	"github.com/tatianab/pitch-puzzle/internal/models"
)

var (
	scaffoldFormation string
	scaffoldOut       string
	scaffoldQuestion  string
	scaffoldDesc      string
	scaffoldType      string
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Export a puzzle template to edit by hand",
	Long: `Lays out a full formation with the creator, marks a default ball
carrier and correct choice, and exports the result as a YAML puzzle
file. Edit the positions, prompts and markers, then drop the file into
your puzzle directory to play it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := creator.NewSession()
		if err := s.ApplyFormation(scaffoldFormation); err != nil {
			return err
		}
		// Sensible defaults for a pass puzzle: the deep midfielder on
		// the ball, the striker as the intended target.
		s.ToggleActive(fmt.Sprintf("creator_%s_6", models.TeamHome))
		s.ToggleCorrect(fmt.Sprintf("creator_%s_9", models.TeamHome))
		s.Meta.Question = scaffoldQuestion
		s.Meta.Description = scaffoldDesc
		s.Meta.Type = models.PuzzleType(scaffoldType)

		snippet, err := s.Export(time.Now())
		if err != nil {
			return err
		}

		if scaffoldOut == "" {
			fmt.Print(snippet)
			return nil
		}
		if err := os.WriteFile(scaffoldOut, []byte(snippet), 0644); err != nil {
			return err
		}
		fmt.Printf("Template written to %s\n", scaffoldOut)
		return nil
	},
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldFormation, "formation", "4-4-2", "formation template")
	scaffoldCmd.Flags().StringVarP(&scaffoldOut, "out", "o", "", "output file (default: stdout)")
	scaffoldCmd.Flags().StringVar(&scaffoldQuestion, "question", "Find the Best Pass", "puzzle question")
	scaffoldCmd.Flags().StringVar(&scaffoldDesc, "description", "Edit this scenario description.", "puzzle description")
	scaffoldCmd.Flags().StringVar(&scaffoldType, "type", "pass", "puzzle type")
}
