package models

// Team identifies which side a player belongs to.
type Team string

const (
	TeamHome Team = "home"
	TeamAway Team = "away"
)

// Role is a positional role code, e.g. "GK" or "CDM".
type Role string

const (
	RoleGK  Role = "GK"
	RoleCB  Role = "CB"
	RoleLB  Role = "LB"
	RoleRB  Role = "RB"
	RoleCDM Role = "CDM"
	RoleCM  Role = "CM"
	RoleCAM Role = "CAM"
	RoleLM  Role = "LM"
	RoleRM  Role = "RM"
	RoleLW  Role = "LW"
	RoleRW  Role = "RW"
	RoleCF  Role = "CF"
	RoleST  Role = "ST"
)

// RoleInfo is the display metadata attached to a role code.
type RoleInfo struct {
	Name         string `yaml:"name" json:"name"`
	Abbreviation string `yaml:"abbreviation" json:"abbreviation"`
}

// Roles maps every known role code to its display metadata.
var Roles = map[Role]RoleInfo{
	RoleGK:  {Name: "Goalkeeper", Abbreviation: "GK"},
	RoleCB:  {Name: "Centre Back", Abbreviation: "CB"},
	RoleLB:  {Name: "Left Back", Abbreviation: "LB"},
	RoleRB:  {Name: "Right Back", Abbreviation: "RB"},
	RoleCDM: {Name: "Defensive Midfielder", Abbreviation: "CDM"},
	RoleCM:  {Name: "Central Midfielder", Abbreviation: "CM"},
	RoleCAM: {Name: "Attacking Midfielder", Abbreviation: "CAM"},
	RoleLM:  {Name: "Left Midfielder", Abbreviation: "LM"},
	RoleRM:  {Name: "Right Midfielder", Abbreviation: "RM"},
	RoleLW:  {Name: "Left Winger", Abbreviation: "LW"},
	RoleRW:  {Name: "Right Winger", Abbreviation: "RW"},
	RoleCF:  {Name: "Centre Forward", Abbreviation: "CF"},
	RoleST:  {Name: "Striker", Abbreviation: "ST"},
}

// PuzzleType classifies what kind of action a puzzle asks for.
type PuzzleType string

const (
	TypePass        PuzzleType = "pass"
	TypeMove        PuzzleType = "move"
	TypeShot        PuzzleType = "shot"
	TypeDefend      PuzzleType = "defend"
	TypeCross       PuzzleType = "cross"
	TypeThroughBall PuzzleType = "through_ball"
	TypeChain       PuzzleType = "chain"
)

// Difficulty rates a puzzle for display purposes.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GameState is the session-level state of a puzzle attempt cycle.
type GameState string

const (
	StatePlaying         GameState = "playing"
	StateChainTransition GameState = "chain_transition"
	StateCompleted       GameState = "completed"
)

// Coordinate is a point on the pitch, each axis a percentage in [0,100]
// of pitch length (X, from the left) and width (Y, from the top).
type Coordinate struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Position combines a player's role metadata with their field coordinate.
type Position struct {
	Role         Role    `yaml:"role" json:"role"`
	Name         string  `yaml:"name" json:"name"`
	Abbreviation string  `yaml:"abbreviation" json:"abbreviation"`
	X            float64 `yaml:"x" json:"x"`
	Y            float64 `yaml:"y" json:"y"`
}

// Coordinate returns the field coordinate part of the position.
func (p Position) Coordinate() Coordinate {
	return Coordinate{X: p.X, Y: p.Y}
}

// Player is one player frozen in a tactical snapshot. Players are never
// mutated after construction: repositioning between chain moves is
// modeled as a new Player value sharing the same ID.
type Player struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Number          int      `yaml:"number" json:"number"`
	Team            Team     `yaml:"team" json:"team"`
	Position        Position `yaml:"position" json:"position"`
	IsCorrectChoice bool     `yaml:"is_correct_choice" json:"isCorrectChoice"`
	IsActivePlayer  bool     `yaml:"is_active_player" json:"isActivePlayer"`
}

// Action describes the intended play in richer terms than the correct
// player id alone. Kept as data for future action-based validation;
// answers are currently judged on player identity only.
type Action struct {
	Type           string     `yaml:"type" json:"type"`
	TargetPlayerID string     `yaml:"target_player_id" json:"targetPlayerId"`
	Coordinates    Coordinate `yaml:"coordinates" json:"coordinates"`
}

// Move is one discrete tactical snapshot: player layout, prompt,
// correct answer and explanation.
type Move struct {
	Question        string   `yaml:"question" json:"question"`
	Description     string   `yaml:"description" json:"description"`
	Players         []Player `yaml:"players" json:"players"`
	CorrectPlayerID string   `yaml:"correct_player_id" json:"correctPlayerId"`
	Action          *Action  `yaml:"action,omitempty" json:"correctAction,omitempty"`
	Explanation     string   `yaml:"explanation" json:"explanation"`
}

// Puzzle is either a single tactical scenario or, when Type is
// TypeChain, an ordered sequence of moves unlocked one at a time.
//
// The embedded Move holds the top-level question/description/players/
// correct answer. For a chain puzzle these mirror
// Moves[CurrentMoveIndex]; only the engine's resolver recomputes that
// projection, and cursor changes are whole-value swaps.
type Puzzle struct {
	ID         string     `yaml:"id" json:"id"`
	Date       string     `yaml:"date" json:"date"`
	Type       PuzzleType `yaml:"type" json:"type"`
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty"`

	Move `yaml:",inline"`

	Moves            []Move `yaml:"moves,omitempty" json:"moves,omitempty"`
	CurrentMoveIndex int    `yaml:"current_move_index" json:"currentMoveIndex"`

	// Session fields, tracked separately from persisted progress.
	Completed  bool   `yaml:"completed" json:"completed"`
	UserAnswer string `yaml:"user_answer,omitempty" json:"userAnswer,omitempty"`
	Attempts   int    `yaml:"attempts" json:"attempts"`
}

// IsChain reports whether the puzzle is a multi-move chain.
func (p Puzzle) IsChain() bool {
	return p.Type == TypeChain
}

// PlayerMovement is the coordinate change of a single player between
// two consecutive chain moves. Derived on demand, never stored.
type PlayerMovement struct {
	PlayerID string     `json:"playerId"`
	From     Coordinate `json:"from"`
	To       Coordinate `json:"to"`
}

// Progress is the persisted outcome of a puzzle attempt, keyed
// externally by the puzzle's date.
type Progress struct {
	Completed      bool   `json:"completed"`
	Attempts       int    `json:"attempts"`
	Date           string `json:"date"`
	Correct        bool   `json:"correct"`
	ChainCompleted bool   `json:"chainCompleted,omitempty"`
}

// PlayerByID finds a player by id within a move's layout.
func PlayerByID(players []Player, id string) (Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// ActivePlayer returns the player currently in possession, if any.
func ActivePlayer(players []Player) (Player, bool) {
	for _, p := range players {
		if p.IsActivePlayer {
			return p, true
		}
	}
	return Player{}, false
}
