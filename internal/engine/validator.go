package engine

import "github.com/tatianab/pitch-puzzle/internal/models"

// ValidateAnswer reports whether the selected player is the current
// move's correct choice. An empty selection is never correct. Answers
// are judged on player identity only; the move's richer Action is
// carried as data but not yet compared.
func ValidateAnswer(p models.Puzzle, selectedPlayerID string) bool {
	if selectedPlayerID == "" {
		return false
	}
	return selectedPlayerID == CurrentMove(p).CorrectPlayerID
}

// CorrectPlayer resolves the current move's designated player.
func CorrectPlayer(p models.Puzzle) (models.Player, bool) {
	m := CurrentMove(p)
	return models.PlayerByID(m.Players, m.CorrectPlayerID)
}
