// Package template loads solution templates and expands their placeholders.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/chibuka/solve/internal/problem"
)

// Placeholder is the only token recognised in a template.
const Placeholder = "{{problem_id}}"

var ErrTemplateNotFound = errors.New("template not found")

// Store reads templates from a directory, one <tag>.txt file per data
// structure.
type Store struct {
	Dir string
}

// Path returns the template file used for ds.
func (s Store) Path(ds problem.DataStructure) string {
	return filepath.Join(s.Dir, ds.String()+".txt")
}

// Load reads the template for ds and expands it for id.
func (s Store) Load(ds problem.DataStructure, id problem.ID) (string, error) {
	path := s.Path(ds)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return Expand(string(content), id), nil
}

// Expand replaces every Placeholder in content with the decimal id. The
// replacement text is not rescanned.
func Expand(content string, id problem.ID) string {
	return strings.ReplaceAll(content, Placeholder, id.String())
}
