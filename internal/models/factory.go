package models

import "fmt"

// PlayerParams are the raw authoring inputs for a player.
type PlayerParams struct {
	ID              string
	Name            string
	Number          int
	Team            Team
	Role            Role
	X               float64
	Y               float64
	IsCorrectChoice bool
	IsActivePlayer  bool
}

// NewPlayer builds a Player, merging role display metadata from the
// role registry with the raw field coordinates. The role code must be
// registered; coordinates are taken as given, out-of-range values are
// a caller error.
func NewPlayer(params PlayerParams) (Player, error) {
	info, ok := Roles[params.Role]
	if !ok {
		return Player{}, fmt.Errorf("player %q: unknown role %q", params.ID, params.Role)
	}
	if params.ID == "" {
		return Player{}, fmt.Errorf("player id must not be empty")
	}
	if params.Number <= 0 {
		return Player{}, fmt.Errorf("player %q: shirt number must be positive, got %d", params.ID, params.Number)
	}
	if params.Team != TeamHome && params.Team != TeamAway {
		return Player{}, fmt.Errorf("player %q: unknown team %q", params.ID, params.Team)
	}
	return Player{
		ID:     params.ID,
		Name:   params.Name,
		Number: params.Number,
		Team:   params.Team,
		Position: Position{
			Role:         params.Role,
			Name:         info.Name,
			Abbreviation: info.Abbreviation,
			X:            params.X,
			Y:            params.Y,
		},
		IsCorrectChoice: params.IsCorrectChoice,
		IsActivePlayer:  params.IsActivePlayer,
	}, nil
}

// PuzzleParams are the raw authoring inputs for a single-move puzzle.
type PuzzleParams struct {
	ID              string
	Date            string
	Type            PuzzleType
	Difficulty      Difficulty
	Question        string
	Description     string
	Players         []Player
	CorrectPlayerID string
	Action          *Action
	Explanation     string
}

// NewPuzzle builds a single-move puzzle with session fields defaulted.
// The correct player id must resolve to a player in the layout; a
// puzzle that can never be solved is rejected at construction time.
func NewPuzzle(params PuzzleParams) (Puzzle, error) {
	if params.ID == "" {
		return Puzzle{}, fmt.Errorf("puzzle id must not be empty")
	}
	if params.Type == TypeChain {
		return Puzzle{}, fmt.Errorf("puzzle %q: chain puzzles are built with NewChainPuzzle", params.ID)
	}
	move := Move{
		Question:        params.Question,
		Description:     params.Description,
		Players:         params.Players,
		CorrectPlayerID: params.CorrectPlayerID,
		Action:          params.Action,
		Explanation:     params.Explanation,
	}
	if err := validateMove(move); err != nil {
		return Puzzle{}, fmt.Errorf("puzzle %q: %w", params.ID, err)
	}
	return Puzzle{
		ID:         params.ID,
		Date:       params.Date,
		Type:       params.Type,
		Difficulty: defaultDifficulty(params.Difficulty),
		Move:       move,
	}, nil
}

// NewChainPuzzle builds a chain puzzle from an ordered, non-empty
// sequence of moves. The cursor starts at 0 and the top-level move
// fields are projected from the first move.
func NewChainPuzzle(id, date string, difficulty Difficulty, moves []Move) (Puzzle, error) {
	if id == "" {
		return Puzzle{}, fmt.Errorf("puzzle id must not be empty")
	}
	if len(moves) == 0 {
		return Puzzle{}, fmt.Errorf("chain puzzle %q: must have at least one move", id)
	}
	for i, m := range moves {
		if err := validateMove(m); err != nil {
			return Puzzle{}, fmt.Errorf("chain puzzle %q: move %d: %w", id, i, err)
		}
	}
	return Puzzle{
		ID:         id,
		Date:       date,
		Type:       TypeChain,
		Difficulty: defaultDifficulty(difficulty),
		Move:       moves[0],
		Moves:      moves,
	}, nil
}

func defaultDifficulty(d Difficulty) Difficulty {
	if d == "" {
		return DifficultyMedium
	}
	return d
}

func validateMove(m Move) error {
	if len(m.Players) == 0 {
		return fmt.Errorf("move has no players")
	}
	seen := make(map[string]struct{}, len(m.Players))
	for _, p := range m.Players {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate player id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	if m.CorrectPlayerID == "" {
		return fmt.Errorf("correct player id must not be empty")
	}
	if _, ok := seen[m.CorrectPlayerID]; !ok {
		return fmt.Errorf("correct player id %q not found among players", m.CorrectPlayerID)
	}
	return nil
}
