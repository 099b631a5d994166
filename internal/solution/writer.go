package solution

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/chibuka/solve/internal/problem"
	"github.com/chibuka/solve/internal/template"
)

var (
	ErrAlreadySolved = errors.New("already solved")
	ErrIndexMissing  = errors.New("index file not found")
)

// Layout locates solution files and the index inside a workspace.
type Layout struct {
	SolutionsDir string
	IndexFile    string
	Extension    string
}

// SolutionPath returns the file scaffolded for id, e.g. src/solutions/s_42.rs.
func (l Layout) SolutionPath(id problem.ID) string {
	return filepath.Join(l.SolutionsDir, id.Stem()+l.Extension)
}

// Result describes a completed scaffold.
type Result struct {
	ID           problem.ID
	SolutionPath string
	IndexPath    string
	Bytes        int
}

type Writer struct {
	Layout    Layout
	Templates template.Store
	Logger    *zap.Logger
}

func (w *Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

// Scaffold creates the solution file for id from the ds template and
// registers it in the index. An existing solution is never touched. If the
// index append fails the new solution file is left in place.
func (w *Writer) Scaffold(id problem.ID, ds problem.DataStructure) (*Result, error) {
	log := w.logger().With(zap.Stringer("problem", id), zap.Stringer("data_structure", ds))

	content, err := w.Templates.Load(ds, id)
	if err != nil {
		return nil, err
	}
	log.Debug("template loaded", zap.String("path", w.Templates.Path(ds)))

	if _, err := os.Stat(w.Layout.IndexFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexMissing, w.Layout.IndexFile)
		}
		return nil, fmt.Errorf("failed to stat index %s: %w", w.Layout.IndexFile, err)
	}

	path := w.Layout.SolutionPath(id)
	n, err := createSolution(path, content)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("problem %s %w: %s exists", id, ErrAlreadySolved, path)
		}
		return nil, err
	}
	log.Debug("solution written", zap.String("path", path), zap.Int("bytes", n))

	if err := appendIndexEntry(w.Layout.IndexFile, id.IndexEntry()); err != nil {
		return nil, fmt.Errorf("%w (solution file %s was kept)", err, path)
	}
	log.Debug("index updated", zap.String("path", w.Layout.IndexFile), zap.String("entry", id.IndexEntry()))

	return &Result{
		ID:           id,
		SolutionPath: path,
		IndexPath:    w.Layout.IndexFile,
		Bytes:        n,
	}, nil
}

func createSolution(path, content string) (int, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create solution file %s: %w", path, err)
	}

	n, err := io.WriteString(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to write solution file %s: %w", path, err)
	}
	return n, nil
}

// appendIndexEntry writes entry as a new line at the end of the index,
// starting a fresh line first if the file does not end in one.
func appendIndexEntry(path, entry string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("failed to open index %s: %w", path, err)
	}
	defer f.Close()

	line := entry + "\n"
	needsNewline, err := missingTrailingNewline(f)
	if err != nil {
		return fmt.Errorf("failed to read index %s: %w", path, err)
	}
	if needsNewline {
		line = "\n" + line
	}

	if _, err := io.WriteString(f, line); err != nil {
		return fmt.Errorf("failed to append to index %s: %w", path, err)
	}
	return f.Close()
}

func missingTrailingNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}
