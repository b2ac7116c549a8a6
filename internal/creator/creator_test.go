package creator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/pitch-puzzle/internal/models"
	"github.com/tatianab/pitch-puzzle/internal/puzzles"
)

func TestAddPlayerAssignsNumbersPerTeam(t *testing.T) {
	s := NewSession()

	h1, err := s.AddPlayer(models.TeamHome, models.RoleGK, 10, 50)
	require.NoError(t, err)
	h2, err := s.AddPlayer(models.TeamHome, models.RoleCB, 25, 40)
	require.NoError(t, err)
	a1, err := s.AddPlayer(models.TeamAway, models.RoleST, 35, 50)
	require.NoError(t, err)

	assert.Equal(t, 1, h1.Number)
	assert.Equal(t, 2, h2.Number)
	assert.Equal(t, 1, a1.Number, "away numbering is independent of home")
	assert.Equal(t, "Goalkeeper", h1.Name)
}

func TestAddPlayerClampsCoordinates(t *testing.T) {
	s := NewSession()
	p, err := s.AddPlayer(models.TeamHome, models.RoleST, -20, 140)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Position.X)
	assert.Equal(t, 100.0, p.Position.Y)
}

func TestToggleActiveSingleHolder(t *testing.T) {
	s := NewSession()
	p1, err := s.AddPlayer(models.TeamHome, models.RoleGK, 10, 50)
	require.NoError(t, err)
	p2, err := s.AddPlayer(models.TeamHome, models.RoleST, 65, 50)
	require.NoError(t, err)

	s.ToggleActive(p1.ID)
	assert.Equal(t, p1.ID, s.ActivePlayerID())

	s.ToggleActive(p2.ID)
	assert.Equal(t, p2.ID, s.ActivePlayerID())
	active, ok := models.ActivePlayer(s.Players())
	require.True(t, ok)
	assert.Equal(t, p2.ID, active.ID, "the ball moves, it does not duplicate")

	s.ToggleActive(p2.ID)
	assert.Empty(t, s.ActivePlayerID())
	_, ok = models.ActivePlayer(s.Players())
	assert.False(t, ok)
}

func TestRemovePlayerClearsMarks(t *testing.T) {
	s := NewSession()
	p, err := s.AddPlayer(models.TeamHome, models.RoleCM, 45, 50)
	require.NoError(t, err)
	s.ToggleActive(p.ID)
	s.ToggleCorrect(p.ID)

	require.True(t, s.RemovePlayer(p.ID))
	assert.Empty(t, s.ActivePlayerID())
	assert.Empty(t, s.CorrectPlayerID())
	assert.Empty(t, s.Players())

	assert.False(t, s.RemovePlayer("ghost"))
}

func TestMovePlayer(t *testing.T) {
	s := NewSession()
	p, err := s.AddPlayer(models.TeamHome, models.RoleCM, 45, 50)
	require.NoError(t, err)

	require.True(t, s.MovePlayer(p.ID, 60, 120))
	moved, ok := models.PlayerByID(s.Players(), p.ID)
	require.True(t, ok)
	assert.Equal(t, 60.0, moved.Position.X)
	assert.Equal(t, 100.0, moved.Position.Y)

	assert.False(t, s.MovePlayer("ghost", 1, 1))
}

func TestApplyFormation(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.ApplyFormation("4-4-2"))

	players := s.Players()
	assert.Len(t, players, 22)

	var home, away int
	for _, p := range players {
		switch p.Team {
		case models.TeamHome:
			home++
		case models.TeamAway:
			away++
		}
	}
	assert.Equal(t, 11, home)
	assert.Equal(t, 11, away)

	// New players number on from the template's squad.
	extra, err := s.AddPlayer(models.TeamHome, models.RoleCAM, 55, 50)
	require.NoError(t, err)
	assert.Equal(t, 12, extra.Number)

	assert.Error(t, s.ApplyFormation("3-5-2"))
}

func TestBuildRejectsIncompleteLayouts(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	s := NewSession()
	_, err := s.Build(now)
	assert.ErrorContains(t, err, "no players")

	p, err := s.AddPlayer(models.TeamHome, models.RoleGK, 10, 50)
	require.NoError(t, err)
	_, err = s.Build(now)
	assert.ErrorContains(t, err, "no active player")

	s.ToggleActive(p.ID)
	_, err = s.Build(now)
	assert.ErrorContains(t, err, "no correct player")

	s.ToggleCorrect(p.ID)
	_, err = s.Build(now)
	assert.ErrorContains(t, err, "question and description")
}

func TestExportRoundTripsThroughCatalogCodec(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	s := NewSession()
	require.NoError(t, s.ApplyFormation("4-4-2"))
	s.ToggleActive("creator_home_6")
	s.ToggleCorrect("creator_home_9")
	s.Meta.Question = "Who should receive the pass?"
	s.Meta.Description = "Build through the middle."
	s.Meta.Explanation = "The striker has space to turn."

	out, err := s.Export(now)
	require.NoError(t, err)
	assert.Contains(t, out, "# Generated puzzle")

	decoded, err := puzzles.DecodeFile([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "creator_home_9", decoded.CorrectPlayerID)
	assert.Len(t, decoded.Players, 22)

	active, ok := models.ActivePlayer(decoded.Players)
	require.True(t, ok)
	assert.Equal(t, "creator_home_6", active.ID)
}
