// Package puzzles holds the puzzle catalog and its deterministic daily
// rotation.
package puzzles

import (
	"time"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

// DateFormat is the ISO calendar-day form used for puzzle dates and
// progress keys.
const DateFormat = "2006-01-02"

// Repository is an immutable, ordered puzzle catalog. It is built once
// at startup and read-only thereafter.
type Repository struct {
	catalog []models.Puzzle
}

// NewRepository builds a repository over the built-in catalog plus any
// extra (e.g. file-authored) puzzles, in that order.
func NewRepository(extra ...models.Puzzle) *Repository {
	catalog := builtin()
	catalog = append(catalog, extra...)
	return &Repository{catalog: catalog}
}

// TodaysPuzzle returns the puzzle assigned to the current calendar day.
// Same day, same puzzle.
func (r *Repository) TodaysPuzzle() models.Puzzle {
	return r.PuzzleForDate(time.Now())
}

// PuzzleForDate selects a puzzle by ordinal day of year modulo the
// catalog size and returns a copy with its date set to the given day.
// The rotation takes no account of catalog-size/365 non-divisibility,
// so some puzzles recur on more days than others.
func (r *Repository) PuzzleForDate(t time.Time) models.Puzzle {
	idx := t.YearDay() % len(r.catalog)
	p := r.catalog[idx]
	p.Date = t.Format(DateFormat)
	return p
}

// ByID looks up a puzzle by id. The second return is false when no
// catalog entry matches.
func (r *Repository) ByID(id string) (models.Puzzle, bool) {
	for _, p := range r.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Puzzle{}, false
}

// All returns the catalog in rotation order.
func (r *Repository) All() []models.Puzzle {
	out := make([]models.Puzzle, len(r.catalog))
	copy(out, r.catalog)
	return out
}

// Len reports the catalog size.
func (r *Repository) Len() int {
	return len(r.catalog)
}
