// Command simulate_game plays through every catalog puzzle with a
// scripted bot: one deliberate wrong answer, then the correct choice
// for each move. Useful for eyeballing the full progression without
// the TUI.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tatianab/pitch-puzzle/internal/engine"
	"github.com/tatianab/pitch-puzzle/internal/models"
	"github.com/tatianab/pitch-puzzle/internal/progress"
	"github.com/tatianab/pitch-puzzle/internal/puzzles"
)

func main() {
	ctx := context.Background()
	repo := puzzles.NewRepository()
	store := progress.NewMemoryStore()

	for _, p := range repo.All() {
		p.Date = time.Now().Format(puzzles.DateFormat)
		fmt.Printf("=== %s (%s, %s) ===\n", p.ID, p.Type, p.Difficulty)

		session, err := engine.NewSession(ctx, p, store,
			engine.WithDelays(10*time.Millisecond, 10*time.Millisecond))
		if err != nil {
			log.Fatalf("start session: %v", err)
		}

		for {
			snap := session.Snapshot()
			if snap.State == models.StateCompleted {
				break
			}
			fmt.Printf("Move %d/%d: %s\n", snap.MoveNumber, snap.MoveCount, snap.Move.Question)

			// One wrong answer first, to exercise the retry path.
			if wrong := pickWrong(snap.Move); wrong != "" {
				snap, err = session.Submit(ctx, wrong)
				if err != nil {
					log.Fatalf("submit: %v", err)
				}
				fmt.Printf("  wrong guess -> %s\n", snap.Feedback.Message)
			}

			snap, err = session.Submit(ctx, snap.Move.CorrectPlayerID)
			if err != nil {
				log.Fatalf("submit: %v", err)
			}
			fmt.Printf("  correct -> state=%s attempts=%d\n", snap.State, snap.Attempts)

			if snap.State == models.StateChainTransition {
				fmt.Printf("  %d player(s) repositioning\n", len(snap.Movements))
				<-session.Advanced()
			}
		}

		final := session.Snapshot()
		fmt.Printf("Done: %s\n\n", final.Feedback.Message)
		session.Close()

		if err := store.Delete(ctx, p.Date); err != nil {
			log.Fatalf("clear progress: %v", err)
		}
	}
}

func pickWrong(m models.Move) string {
	for _, p := range m.Players {
		if p.ID != m.CorrectPlayerID {
			return p.ID
		}
	}
	return ""
}
