// Package index reads the solutions index, the file that registers every
// scaffolded solution with one line each.
package index

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chibuka/solve/internal/problem"
)

var (
	ErrEmptyIndex     = errors.New("index has no entries")
	ErrMalformedEntry = errors.New("malformed index entry")
)

// LastLine returns the last line of path that is not blank, trimmed. Lines
// are scanned from the end of the file, so their length is not bounded.
func LastLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open index %s: %w", path, err)
	}

	for rest := data; len(rest) > 0; {
		i := bytes.LastIndexByte(rest, '\n')
		if line := strings.TrimSpace(string(rest[i+1:])); line != "" {
			return line, nil
		}
		if i < 0 {
			break
		}
		rest = rest[:i]
	}
	return "", fmt.Errorf("%w: %s", ErrEmptyIndex, path)
}

// Latest returns the id registered by the last entry of the index.
func Latest(path string) (problem.ID, error) {
	line, err := LastLine(path)
	if err != nil {
		return 0, err
	}
	id, ok := problem.ParseIndexEntry(line)
	if !ok {
		return 0, fmt.Errorf("%w in %s: %q (expected a line like %q)", ErrMalformedEntry, path, line, problem.ID(1).IndexEntry())
	}
	return id, nil
}
