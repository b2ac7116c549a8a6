// Package creator is the puzzle authoring surface: place players on
// the pitch, mark the ball carrier and the correct choice, then export
// the result as a catalog file.
package creator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tatianab/pitch-puzzle/internal/models"
	"github.com/tatianab/pitch-puzzle/internal/puzzles"
)

// Metadata is the authored prompt text around the player layout.
type Metadata struct {
	Question    string
	Description string
	Explanation string
	Difficulty  models.Difficulty
	Type        models.PuzzleType
}

// Session is a mutable authoring workspace. Nothing here touches the
// play engine; Build funnels through the entity factory so an invalid
// layout is rejected before it can be exported.
type Session struct {
	Meta Metadata

	players    []models.Player
	nextNumber map[models.Team]int
	activeID   string
	correctID  string
}

func NewSession() *Session {
	return &Session{
		Meta: Metadata{
			Difficulty: models.DifficultyMedium,
			Type:       models.TypePass,
		},
		nextNumber: map[models.Team]int{
			models.TeamHome: 1,
			models.TeamAway: 1,
		},
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AddPlayer places a new player at the given pitch coordinates,
// clamped to [0,100], with the team's next free shirt number.
func (s *Session) AddPlayer(team models.Team, role models.Role, x, y float64) (models.Player, error) {
	p, err := models.NewPlayer(models.PlayerParams{
		ID:     fmt.Sprintf("creator_%s_%s", team, uuid.NewString()),
		Name:   models.Roles[role].Name,
		Number: s.nextNumber[team],
		Team:   team,
		Role:   role,
		X:      clamp(x),
		Y:      clamp(y),
	})
	if err != nil {
		return models.Player{}, err
	}
	s.players = append(s.players, p)
	s.nextNumber[team]++
	return p, nil
}

// MovePlayer repositions an existing player. Returns false if the id
// is unknown.
func (s *Session) MovePlayer(id string, x, y float64) bool {
	for i := range s.players {
		if s.players[i].ID == id {
			s.players[i].Position.X = clamp(x)
			s.players[i].Position.Y = clamp(y)
			return true
		}
	}
	return false
}

// RemovePlayer deletes a player, clearing the active/correct marks if
// they pointed at it.
func (s *Session) RemovePlayer(id string) bool {
	for i := range s.players {
		if s.players[i].ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			if s.activeID == id {
				s.activeID = ""
			}
			if s.correctID == id {
				s.correctID = ""
			}
			return true
		}
	}
	return false
}

// ToggleActive marks the player as the ball carrier, or unmarks them
// if already marked. At most one player holds the ball.
func (s *Session) ToggleActive(id string) {
	if s.activeID == id {
		s.activeID = ""
	} else {
		s.activeID = id
	}
	for i := range s.players {
		s.players[i].IsActivePlayer = s.players[i].ID == s.activeID
	}
}

// ToggleCorrect marks the player as the correct choice, or unmarks
// them if already marked.
func (s *Session) ToggleCorrect(id string) {
	if s.correctID == id {
		s.correctID = ""
	} else {
		s.correctID = id
	}
	for i := range s.players {
		s.players[i].IsCorrectChoice = s.players[i].ID == s.correctID
	}
}

// Clear removes every player and resets shirt numbering.
func (s *Session) Clear() {
	s.players = nil
	s.activeID = ""
	s.correctID = ""
	s.nextNumber[models.TeamHome] = 1
	s.nextNumber[models.TeamAway] = 1
}

// Players returns a copy of the current layout.
func (s *Session) Players() []models.Player {
	out := make([]models.Player, len(s.players))
	copy(out, s.players)
	return out
}

func (s *Session) ActivePlayerID() string  { return s.activeID }
func (s *Session) CorrectPlayerID() string { return s.correctID }

type formationSlot struct {
	role   models.Role
	x, y   float64
	number int
}

var formations = map[string]map[models.Team][]formationSlot{
	"4-4-2": {
		models.TeamHome: {
			{models.RoleGK, 10, 50, 1},
			{models.RoleLB, 25, 25, 3},
			{models.RoleCB, 25, 40, 4},
			{models.RoleCB, 25, 60, 5},
			{models.RoleRB, 25, 75, 2},
			{models.RoleLM, 45, 25, 11},
			{models.RoleCM, 45, 42, 8},
			{models.RoleCM, 45, 58, 6},
			{models.RoleRM, 45, 75, 7},
			{models.RoleST, 65, 42, 10},
			{models.RoleST, 65, 58, 9},
		},
		models.TeamAway: {
			{models.RoleGK, 90, 50, 1},
			{models.RoleRB, 75, 25, 2},
			{models.RoleCB, 75, 40, 4},
			{models.RoleCB, 75, 60, 5},
			{models.RoleLB, 75, 75, 3},
			{models.RoleRM, 55, 25, 7},
			{models.RoleCM, 55, 42, 6},
			{models.RoleCM, 55, 58, 8},
			{models.RoleLM, 55, 75, 11},
			{models.RoleST, 35, 42, 9},
			{models.RoleST, 35, 58, 10},
		},
	},
}

// Formations lists the available formation template names.
func Formations() []string {
	return []string{"4-4-2"}
}

// ApplyFormation replaces the layout with a full 11v11 template.
func (s *Session) ApplyFormation(name string) error {
	template, ok := formations[name]
	if !ok {
		return fmt.Errorf("unknown formation %q", name)
	}
	s.Clear()
	for _, team := range []models.Team{models.TeamHome, models.TeamAway} {
		for _, slot := range template[team] {
			p, err := models.NewPlayer(models.PlayerParams{
				ID:     fmt.Sprintf("creator_%s_%d", team, slot.number),
				Name:   models.Roles[slot.role].Name,
				Number: slot.number,
				Team:   team,
				Role:   slot.role,
				X:      slot.x,
				Y:      slot.y,
			})
			if err != nil {
				return err
			}
			s.players = append(s.players, p)
		}
		s.nextNumber[team] = 12
	}
	return nil
}

// Build assembles the authored layout into a playable puzzle. The
// layout needs players, a ball carrier, a correct choice, and filled-in
// question and description text.
func (s *Session) Build(now time.Time) (models.Puzzle, error) {
	if len(s.players) == 0 {
		return models.Puzzle{}, fmt.Errorf("no players on the pitch")
	}
	if s.activeID == "" {
		return models.Puzzle{}, fmt.Errorf("no active player set")
	}
	if s.correctID == "" {
		return models.Puzzle{}, fmt.Errorf("no correct player set")
	}
	if strings.TrimSpace(s.Meta.Question) == "" || strings.TrimSpace(s.Meta.Description) == "" {
		return models.Puzzle{}, fmt.Errorf("question and description must be filled in")
	}
	return models.NewPuzzle(models.PuzzleParams{
		ID:              fmt.Sprintf("custom_puzzle_%d", now.UnixMilli()),
		Date:            now.Format(puzzles.DateFormat),
		Question:        s.Meta.Question,
		Description:     s.Meta.Description,
		Type:            s.Meta.Type,
		Difficulty:      s.Meta.Difficulty,
		Players:         s.Players(),
		CorrectPlayerID: s.correctID,
		Explanation:     s.Meta.Explanation,
	})
}

// Export renders the authored puzzle as a YAML snippet ready to drop
// into the puzzle directory.
func (s *Session) Export(now time.Time) (string, error) {
	p, err := s.Build(now)
	if err != nil {
		return "", err
	}
	data, err := puzzles.EncodeFile(p)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("# Generated puzzle - %s\n# Save as <name>.yaml in your puzzle directory to play it.\n",
		now.Format(time.RFC1123))
	return header + string(data), nil
}
