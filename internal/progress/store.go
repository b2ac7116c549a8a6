// Package progress persists puzzle outcomes per calendar day so a
// completed day cannot be replayed until reset.
package progress

import (
	"context"
	"errors"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

// ErrNotFound is returned when no record exists for a date.
var ErrNotFound = errors.New("progress: not found")

// Key returns the storage key for a puzzle date.
func Key(date string) string {
	return "puzzle_" + date
}

// Store holds one Progress record per puzzle date. Writes fully
// replace the prior record for that date.
type Store interface {
	Get(ctx context.Context, date string) (models.Progress, error)
	Put(ctx context.Context, date string, rec models.Progress) error
	Delete(ctx context.Context, date string) error
	Close() error
}
