package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareWorkspace(t *testing.T) {
	root := t.TempDir()
	seed := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(seed, []byte("fn solve_{{problem_id}}() {}\n"), 0644))

	setup := WorkspaceSetup{
		CreateDirs:  []string{filepath.Join(root, "src", "solutions"), filepath.Join(root, "templates")},
		CreateFiles: map[string]string{filepath.Join(root, "src", "solutions.rs"): ""},
		CopyFiles:   map[string]string{filepath.Join(root, "templates", "default.txt"): seed},
	}

	created, err := PrepareWorkspace(setup)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "solutions"),
		filepath.Join(root, "templates"),
		filepath.Join(root, "src", "solutions.rs"),
		filepath.Join(root, "templates", "default.txt"),
	}, created)

	assert.DirExists(t, filepath.Join(root, "src", "solutions"))
	b, err := os.ReadFile(filepath.Join(root, "templates", "default.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fn solve_{{problem_id}}() {}\n", string(b))

	// second run is a no-op
	created, err = PrepareWorkspace(setup)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestPrepareWorkspaceKeepsExistingFiles(t *testing.T) {
	root := t.TempDir()
	index := filepath.Join(root, "solutions.rs")
	tmpl := filepath.Join(root, "default.txt")
	require.NoError(t, os.WriteFile(index, []byte("mod s_1;\n"), 0644))
	require.NoError(t, os.WriteFile(tmpl, []byte("mine"), 0644))

	seed := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(seed, []byte("theirs"), 0644))

	created, err := PrepareWorkspace(WorkspaceSetup{
		CreateFiles: map[string]string{index: ""},
		CopyFiles:   map[string]string{tmpl: seed},
	})
	require.NoError(t, err)
	assert.Empty(t, created)

	b, _ := os.ReadFile(index)
	assert.Equal(t, "mod s_1;\n", string(b))
	b, _ = os.ReadFile(tmpl)
	assert.Equal(t, "mine", string(b))
}

func TestPrepareWorkspaceMissingCopySource(t *testing.T) {
	root := t.TempDir()
	_, err := PrepareWorkspace(WorkspaceSetup{
		CopyFiles: map[string]string{filepath.Join(root, "default.txt"): filepath.Join(root, "nope.txt")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}
