package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

func mustPlayer(t *testing.T, id string, role models.Role, x, y float64, flags ...string) models.Player {
	t.Helper()
	params := models.PlayerParams{
		ID:     id,
		Name:   models.Roles[role].Name,
		Number: 1,
		Team:   models.TeamHome,
		Role:   role,
		X:      x,
		Y:      y,
	}
	switch {
	case id == "b":
		params.Number = 6
	case id == "c":
		params.Number = 9
	}
	for _, f := range flags {
		switch f {
		case "active":
			params.IsActivePlayer = true
		case "correct":
			params.IsCorrectChoice = true
		}
	}
	p, err := models.NewPlayer(params)
	require.NoError(t, err)
	return p
}

// chainFixture is a three-move chain: the ball travels a -> b -> c,
// with b repositioning between the first two moves.
func chainFixture(t *testing.T) models.Puzzle {
	t.Helper()
	moves := []models.Move{
		{
			Question: "move one",
			Players: []models.Player{
				mustPlayer(t, "a", models.RoleGK, 5, 50, "active"),
				mustPlayer(t, "b", models.RoleCDM, 30, 50, "correct"),
				mustPlayer(t, "c", models.RoleST, 60, 50),
			},
			CorrectPlayerID: "b",
			Explanation:     "first explanation",
		},
		{
			Question: "move two",
			Players: []models.Player{
				mustPlayer(t, "a", models.RoleGK, 5, 50),
				mustPlayer(t, "b", models.RoleCDM, 45, 50, "active"),
				mustPlayer(t, "c", models.RoleST, 60, 50, "correct"),
			},
			CorrectPlayerID: "c",
			Explanation:     "second explanation",
		},
		{
			Question: "move three",
			Players: []models.Player{
				mustPlayer(t, "a", models.RoleGK, 5, 50),
				mustPlayer(t, "b", models.RoleCDM, 45, 50),
				mustPlayer(t, "c", models.RoleST, 80, 40, "active"),
			},
			CorrectPlayerID: "a",
			Explanation:     "third explanation",
		},
	}
	p, err := models.NewChainPuzzle("fixture_chain", "2026-09-01", models.DifficultyMedium, moves)
	require.NoError(t, err)
	return p
}

func simpleFixture(t *testing.T) models.Puzzle {
	t.Helper()
	p, err := models.NewPuzzle(models.PuzzleParams{
		ID:   "fixture_simple",
		Date: "2026-09-01",
		Type: models.TypePass,
		Players: []models.Player{
			mustPlayer(t, "a", models.RoleGK, 5, 50, "active"),
			mustPlayer(t, "b", models.RoleCDM, 30, 50, "correct"),
			mustPlayer(t, "c", models.RoleST, 60, 50),
		},
		CorrectPlayerID: "b",
		Explanation:     "pass to the free man",
	})
	require.NoError(t, err)
	return p
}

func TestCurrentMoveSimplePuzzle(t *testing.T) {
	p := simpleFixture(t)
	m := CurrentMove(p)
	assert.Equal(t, p.Question, m.Question)
	assert.Equal(t, p.CorrectPlayerID, m.CorrectPlayerID)
	assert.Equal(t, p.Players, m.Players)
}

func TestCurrentMoveTracksCursor(t *testing.T) {
	p := chainFixture(t)
	for i := 0; ; i++ {
		m := CurrentMove(p)
		assert.Equal(t, p.Moves[i].Question, m.Question, "index %d", i)
		assert.Equal(t, p.Moves[i].CorrectPlayerID, m.CorrectPlayerID, "index %d", i)
		assert.Equal(t, p.Moves[i].Players, m.Players, "index %d", i)
		assert.Equal(t, p.Moves[i].Explanation, m.Explanation, "index %d", i)

		next, ok := NextMove(p)
		if !ok {
			break
		}
		p = next
	}
}

func TestCurrentMoveIsIdempotent(t *testing.T) {
	p := chainFixture(t)
	first := CurrentMove(p)
	second := CurrentMove(p)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestNextMoveDoesNotMutateInput(t *testing.T) {
	p := chainFixture(t)
	before := p.CurrentMoveIndex
	next, ok := NextMove(p)
	require.True(t, ok)
	assert.Equal(t, before, p.CurrentMoveIndex)
	assert.Equal(t, before+1, next.CurrentMoveIndex)
	assert.Equal(t, next.Moves[next.CurrentMoveIndex].Question, next.Question,
		"top-level fields re-projected on advance")
}

func TestNextMoveExhaustsExactlyWithChainComplete(t *testing.T) {
	p := chainFixture(t)
	for {
		next, ok := NextMove(p)
		assert.Equal(t, !IsChainComplete(p), ok,
			"NextMove availability must mirror IsChainComplete at index %d", p.CurrentMoveIndex)
		if !ok {
			break
		}
		p = next
	}
	assert.Equal(t, len(p.Moves)-1, p.CurrentMoveIndex)
}

func TestNextMoveOnSimplePuzzle(t *testing.T) {
	p := simpleFixture(t)
	_, ok := NextMove(p)
	assert.False(t, ok)
	assert.True(t, IsChainComplete(p))
}

func TestRewind(t *testing.T) {
	p := chainFixture(t)
	advanced, ok := NextMove(p)
	require.True(t, ok)

	rewound := Rewind(advanced)
	assert.Equal(t, 0, rewound.CurrentMoveIndex)
	assert.Equal(t, p.Moves[0].Question, rewound.Question)
	assert.Equal(t, p.Moves[0].CorrectPlayerID, rewound.CorrectPlayerID)
}

func TestPlayerMovementsIdenticalLayouts(t *testing.T) {
	p := chainFixture(t)
	players := p.Moves[0].Players
	assert.Empty(t, PlayerMovements(players, players))
}

func TestPlayerMovementsSingleMover(t *testing.T) {
	p := chainFixture(t)
	movements := PlayerMovements(p.Moves[0].Players, p.Moves[1].Players)

	require.Len(t, movements, 1)
	assert.Equal(t, "b", movements[0].PlayerID)
	assert.Equal(t, models.Coordinate{X: 30, Y: 50}, movements[0].From)
	assert.Equal(t, models.Coordinate{X: 45, Y: 50}, movements[0].To)
}

func TestPlayerMovementsExcludesLeaversAndJoiners(t *testing.T) {
	from := []models.Player{
		mustPlayer(t, "a", models.RoleGK, 5, 50),
		mustPlayer(t, "b", models.RoleCDM, 30, 50),
	}
	to := []models.Player{
		mustPlayer(t, "b", models.RoleCDM, 40, 50),
		mustPlayer(t, "c", models.RoleST, 60, 50),
	}
	movements := PlayerMovements(from, to)
	require.Len(t, movements, 1)
	assert.Equal(t, "b", movements[0].PlayerID)
}

func TestPlayerMovementsPreservesFromOrder(t *testing.T) {
	from := []models.Player{
		mustPlayer(t, "c", models.RoleST, 60, 50),
		mustPlayer(t, "a", models.RoleGK, 5, 50),
		mustPlayer(t, "b", models.RoleCDM, 30, 50),
	}
	to := []models.Player{
		mustPlayer(t, "a", models.RoleGK, 10, 50),
		mustPlayer(t, "b", models.RoleCDM, 40, 50),
		mustPlayer(t, "c", models.RoleST, 70, 50),
	}
	movements := PlayerMovements(from, to)
	require.Len(t, movements, 3)
	assert.Equal(t, "c", movements[0].PlayerID)
	assert.Equal(t, "a", movements[1].PlayerID)
	assert.Equal(t, "b", movements[2].PlayerID)
}

func TestValidateAnswer(t *testing.T) {
	p := simpleFixture(t)
	for _, candidate := range []string{"a", "b", "c", "ghost"} {
		assert.Equal(t, candidate == p.CorrectPlayerID, ValidateAnswer(p, candidate), "candidate %s", candidate)
	}
	assert.False(t, ValidateAnswer(p, ""))
}

func TestValidateAnswerUsesCurrentMove(t *testing.T) {
	p := chainFixture(t)
	assert.True(t, ValidateAnswer(p, "b"))

	advanced, ok := NextMove(p)
	require.True(t, ok)
	assert.False(t, ValidateAnswer(advanced, "b"))
	assert.True(t, ValidateAnswer(advanced, "c"))
}

func TestCorrectPlayer(t *testing.T) {
	p := simpleFixture(t)
	player, ok := CorrectPlayer(p)
	require.True(t, ok)
	assert.Equal(t, "b", player.ID)
	assert.True(t, player.IsCorrectChoice)
}
