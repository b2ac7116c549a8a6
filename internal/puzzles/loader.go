package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

// LoadDir reads every .yaml/.yml puzzle document in dir. A missing
// directory is not an error; an unparseable or invalid puzzle is.
func LoadDir(dir string) ([]models.Puzzle, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var loaded []models.Puzzle
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		p, err := DecodeFile(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
