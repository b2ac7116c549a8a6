package puzzles

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

// The YAML catalog file schema. Authored puzzles use the same compact
// player shape the creator exports, and are run through the entity
// factory on load so a broken file fails fast instead of shipping an
// unsolvable puzzle.

type filePlayer struct {
	ID      string      `yaml:"id"`
	Name    string      `yaml:"name,omitempty"`
	Number  int         `yaml:"number"`
	Team    models.Team `yaml:"team"`
	Role    models.Role `yaml:"role"`
	X       float64     `yaml:"x"`
	Y       float64     `yaml:"y"`
	Active  bool        `yaml:"active,omitempty"`
	Correct bool        `yaml:"correct,omitempty"`
}

type fileMove struct {
	Question      string         `yaml:"question"`
	Description   string         `yaml:"description"`
	Players       []filePlayer   `yaml:"players"`
	CorrectPlayer string         `yaml:"correct_player"`
	Action        *models.Action `yaml:"action,omitempty"`
	Explanation   string         `yaml:"explanation"`
}

// File is one authored puzzle document.
type File struct {
	ID         string            `yaml:"id"`
	Type       models.PuzzleType `yaml:"type"`
	Difficulty models.Difficulty `yaml:"difficulty,omitempty"`

	// Single-move puzzles use these fields directly.
	Question      string         `yaml:"question,omitempty"`
	Description   string         `yaml:"description,omitempty"`
	Players       []filePlayer   `yaml:"players,omitempty"`
	CorrectPlayer string         `yaml:"correct_player,omitempty"`
	Action        *models.Action `yaml:"action,omitempty"`
	Explanation   string         `yaml:"explanation,omitempty"`

	// Chain puzzles list their moves instead.
	Moves []fileMove `yaml:"moves,omitempty"`
}

// DecodeFile parses a YAML puzzle document and builds the puzzle
// through the entity factory.
func DecodeFile(data []byte) (models.Puzzle, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return models.Puzzle{}, fmt.Errorf("parse puzzle file: %w", err)
	}
	return f.build()
}

func (f File) build() (models.Puzzle, error) {
	if f.Type == models.TypeChain {
		moves := make([]models.Move, 0, len(f.Moves))
		for i, fm := range f.Moves {
			m, err := fm.build()
			if err != nil {
				return models.Puzzle{}, fmt.Errorf("puzzle %q: move %d: %w", f.ID, i, err)
			}
			moves = append(moves, m)
		}
		return models.NewChainPuzzle(f.ID, "", f.Difficulty, moves)
	}

	players, err := buildPlayers(f.Players)
	if err != nil {
		return models.Puzzle{}, fmt.Errorf("puzzle %q: %w", f.ID, err)
	}
	return models.NewPuzzle(models.PuzzleParams{
		ID:              f.ID,
		Type:            f.Type,
		Difficulty:      f.Difficulty,
		Question:        f.Question,
		Description:     f.Description,
		Players:         players,
		CorrectPlayerID: f.CorrectPlayer,
		Action:          f.Action,
		Explanation:     f.Explanation,
	})
}

func (fm fileMove) build() (models.Move, error) {
	players, err := buildPlayers(fm.Players)
	if err != nil {
		return models.Move{}, err
	}
	return models.Move{
		Question:        fm.Question,
		Description:     fm.Description,
		Players:         players,
		CorrectPlayerID: fm.CorrectPlayer,
		Action:          fm.Action,
		Explanation:     fm.Explanation,
	}, nil
}

func buildPlayers(fps []filePlayer) ([]models.Player, error) {
	players := make([]models.Player, 0, len(fps))
	for _, fp := range fps {
		name := fp.Name
		if name == "" {
			name = models.Roles[fp.Role].Name
		}
		p, err := models.NewPlayer(models.PlayerParams{
			ID:              fp.ID,
			Name:            name,
			Number:          fp.Number,
			Team:            fp.Team,
			Role:            fp.Role,
			X:               fp.X,
			Y:               fp.Y,
			IsActivePlayer:  fp.Active,
			IsCorrectChoice: fp.Correct,
		})
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// EncodeFile renders a puzzle as a YAML catalog document, the inverse
// of DecodeFile. Used by the creator export.
func EncodeFile(p models.Puzzle) ([]byte, error) {
	f := File{
		ID:         p.ID,
		Type:       p.Type,
		Difficulty: p.Difficulty,
	}
	if p.IsChain() {
		for _, m := range p.Moves {
			f.Moves = append(f.Moves, fileMove{
				Question:      m.Question,
				Description:   m.Description,
				Players:       encodePlayers(m.Players),
				CorrectPlayer: m.CorrectPlayerID,
				Action:        m.Action,
				Explanation:   m.Explanation,
			})
		}
	} else {
		f.Question = p.Question
		f.Description = p.Description
		f.Players = encodePlayers(p.Players)
		f.CorrectPlayer = p.CorrectPlayerID
		f.Action = p.Action
		f.Explanation = p.Explanation
	}
	return yaml.Marshal(f)
}

func encodePlayers(players []models.Player) []filePlayer {
	out := make([]filePlayer, 0, len(players))
	for _, p := range players {
		out = append(out, filePlayer{
			ID:      p.ID,
			Name:    p.Name,
			Number:  p.Number,
			Team:    p.Team,
			Role:    p.Position.Role,
			X:       p.Position.X,
			Y:       p.Position.Y,
			Active:  p.IsActivePlayer,
			Correct: p.IsCorrectChoice,
		})
	}
	return out
}
