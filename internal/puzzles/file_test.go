package puzzles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := buildUpPuzzle()

	data, err := EncodeFile(original)
	require.NoError(t, err)

	decoded, err := DecodeFile(data)
	require.NoError(t, err)

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Type, decoded.Type)
	assert.Equal(t, original.CorrectPlayerID, decoded.CorrectPlayerID)
	assert.Len(t, decoded.Players, len(original.Players))

	active, ok := models.ActivePlayer(decoded.Players)
	require.True(t, ok)
	assert.Equal(t, "bu_cb2", active.ID)
}

func TestEncodeDecodeChainRoundTrip(t *testing.T) {
	original := counterAttackChain()

	data, err := EncodeFile(original)
	require.NoError(t, err)

	decoded, err := DecodeFile(data)
	require.NoError(t, err)

	require.True(t, decoded.IsChain())
	require.Len(t, decoded.Moves, len(original.Moves))
	for i := range original.Moves {
		assert.Equal(t, original.Moves[i].CorrectPlayerID, decoded.Moves[i].CorrectPlayerID, "move %d", i)
		assert.Len(t, decoded.Moves[i].Players, len(original.Moves[i].Players), "move %d", i)
	}
	assert.Equal(t, original.Moves[0].Question, decoded.Question, "top-level fields projected from move 0")
}

func TestDecodeFileRejectsUnsolvablePuzzle(t *testing.T) {
	doc := `
id: broken
type: pass
question: "Q"
description: "D"
correct_player: ghost
players:
  - id: a
    number: 1
    team: home
    role: GK
    x: 5
    y: 50
`
	_, err := DecodeFile([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	data, err := EncodeFile(buildUpPuzzle())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.yaml"), data, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a puzzle"), 0644))

	loaded, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "build_up_1", loaded[0].ID)
}

func TestLoadDirMissingIsNotAnError(t *testing.T) {
	loaded, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadDirSurfacesBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(":\tnot yaml"), 0644))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
