package engine

import "github.com/tatianab/pitch-puzzle/internal/models"

// PlayerMovements computes the per-player position deltas between two
// consecutive move layouts. A delta is emitted only for players present
// in both layouts whose coordinates differ; players leaving or entering
// the layout are excluded. Ordering follows the from layout.
//
// Coordinates are hand-authored literals, so exact comparison is used.
func PlayerMovements(from, to []models.Player) []models.PlayerMovement {
	var movements []models.PlayerMovement
	for _, fp := range from {
		tp, ok := models.PlayerByID(to, fp.ID)
		if !ok {
			continue
		}
		if fp.Position.X == tp.Position.X && fp.Position.Y == tp.Position.Y {
			continue
		}
		movements = append(movements, models.PlayerMovement{
			PlayerID: fp.ID,
			From:     fp.Position.Coordinate(),
			To:       tp.Position.Coordinate(),
		})
	}
	return movements
}
