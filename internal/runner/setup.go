package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/cp"
)

// WorkspaceSetup lists what `init` lays out. Existing files are kept.
type WorkspaceSetup struct {
	CreateDirs  []string
	CreateFiles map[string]string // path -> content
	CopyFiles   map[string]string // destination -> source
}

// PrepareWorkspace creates the directories and files in setup that do not
// exist yet and returns the paths it created, in order.
func PrepareWorkspace(setup WorkspaceSetup) ([]string, error) {
	var created []string

	for _, dir := range setup.CreateDirs {
		if exists(dir) {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		created = append(created, dir)
	}

	for _, path := range sortedKeys(setup.CreateFiles) {
		if exists(path) {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return created, fmt.Errorf("failed to create parent directory for %s: %w", path, err)
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return created, fmt.Errorf("failed to create file %s: %w", path, err)
		}
		_, err = f.WriteString(setup.CreateFiles[path])
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return created, fmt.Errorf("failed to write file %s: %w", path, err)
		}
		created = append(created, path)
	}

	for _, dst := range sortedKeys(setup.CopyFiles) {
		if exists(dst) {
			continue
		}
		src := setup.CopyFiles[dst]
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return created, fmt.Errorf("failed to create parent directory for %s: %w", dst, err)
		}
		if err := cp.CopyFile(dst, src); err != nil {
			return created, fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
		}
		created = append(created, dst)
	}

	return created, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
