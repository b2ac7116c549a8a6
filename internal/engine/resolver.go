// Package engine implements puzzle progression: move resolution,
// answer validation, chain advancement and the attempt session.
package engine

import "github.com/tatianab/pitch-puzzle/internal/models"

// CurrentMove projects the move the user currently sees. Non-chain
// puzzles already are a move in single-puzzle shape; for chains the
// move at the cursor is authoritative, with the puzzle's own action as
// fallback when the move omits one.
func CurrentMove(p models.Puzzle) models.Move {
	if !p.IsChain() {
		return p.Move
	}
	m := p.Moves[p.CurrentMoveIndex]
	if m.Action == nil {
		m.Action = p.Move.Action
	}
	return m
}

// NextMove returns a copy of the puzzle advanced to the next move,
// with the top-level move fields re-projected from the new cursor.
// ok is false when p is not a chain or the cursor is already on the
// final move. The input is never mutated.
func NextMove(p models.Puzzle) (models.Puzzle, bool) {
	if !p.IsChain() {
		return models.Puzzle{}, false
	}
	next := p.CurrentMoveIndex + 1
	if next >= len(p.Moves) {
		return models.Puzzle{}, false
	}
	return project(p, next), true
}

// Rewind returns a copy of the puzzle back at its first move.
func Rewind(p models.Puzzle) models.Puzzle {
	if !p.IsChain() {
		return p
	}
	return project(p, 0)
}

// IsChainComplete reports whether the puzzle has no further moves:
// trivially true for non-chain puzzles, and true for a chain whose
// cursor sits on the last valid index.
func IsChainComplete(p models.Puzzle) bool {
	if !p.IsChain() {
		return true
	}
	return p.CurrentMoveIndex >= len(p.Moves)-1
}

// project returns a copy of p with the cursor on idx and the cached
// top-level move fields regenerated. This is the only place the
// projection is computed, so the cache cannot diverge from the moves.
func project(p models.Puzzle, idx int) models.Puzzle {
	m := p.Moves[idx]
	if m.Action == nil {
		m.Action = p.Move.Action
	}
	p.CurrentMoveIndex = idx
	p.Move = m
	return p
}
