package solution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chibuka/solve/internal/problem"
	"github.com/chibuka/solve/internal/template"
)

type workspace struct {
	root   string
	writer *Writer
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "templates"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "solutions"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "templates", "default.txt"), []byte("fn solve_{{problem_id}}() {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "solutions.rs"), nil, 0644))

	return &workspace{
		root: root,
		writer: &Writer{
			Layout: Layout{
				SolutionsDir: filepath.Join(root, "src", "solutions"),
				IndexFile:    filepath.Join(root, "src", "solutions.rs"),
				Extension:    ".rs",
			},
			Templates: template.Store{Dir: filepath.Join(root, "templates")},
		},
	}
}

func (ws *workspace) read(t *testing.T, rel ...string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(append([]string{ws.root}, rel...)...))
	require.NoError(t, err)
	return string(b)
}

func TestScaffold(t *testing.T) {
	ws := newWorkspace(t)

	res, err := ws.writer.Scaffold(42, problem.Default)
	require.NoError(t, err)
	assert.Equal(t, problem.ID(42), res.ID)
	assert.Equal(t, filepath.Join(ws.root, "src", "solutions", "s_42.rs"), res.SolutionPath)
	assert.Equal(t, len("fn solve_42() {}\n"), res.Bytes)

	assert.Equal(t, "fn solve_42() {}\n", ws.read(t, "src", "solutions", "s_42.rs"))
	assert.Equal(t, "mod s_42;\n", ws.read(t, "src", "solutions.rs"))
}

func TestScaffoldAppendsOneLinePerProblem(t *testing.T) {
	ws := newWorkspace(t)

	for _, id := range []problem.ID{7, 42, 1} {
		_, err := ws.writer.Scaffold(id, problem.Default)
		require.NoError(t, err)
	}
	assert.Equal(t, "mod s_7;\nmod s_42;\nmod s_1;\n", ws.read(t, "src", "solutions.rs"))
}

func TestScaffoldTwiceFails(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.writer.Scaffold(42, problem.Default)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(ws.root, "src", "solutions", "s_42.rs"), []byte("// my work\n"), 0644))

	_, err = ws.writer.Scaffold(42, problem.Default)
	assert.ErrorIs(t, err, ErrAlreadySolved)
	assert.Contains(t, err.Error(), "already solved")

	assert.Equal(t, "// my work\n", ws.read(t, "src", "solutions", "s_42.rs"))
	assert.Equal(t, "mod s_42;\n", ws.read(t, "src", "solutions.rs"))
}

func TestScaffoldMissingTemplate(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.Remove(filepath.Join(ws.root, "templates", "default.txt")))

	_, err := ws.writer.Scaffold(3, problem.Default)
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)
	assert.Contains(t, err.Error(), filepath.Join("templates", "default.txt"))

	assert.NoFileExists(t, filepath.Join(ws.root, "src", "solutions", "s_3.rs"))
	assert.Empty(t, ws.read(t, "src", "solutions.rs"))
}

func TestScaffoldMissingSolutionsDir(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.RemoveAll(filepath.Join(ws.root, "src", "solutions")))

	_, err := ws.writer.Scaffold(9, problem.Default)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadySolved)
	assert.Contains(t, err.Error(), "failed to create solution file")

	assert.Empty(t, ws.read(t, "src", "solutions.rs"))
}

func TestScaffoldMissingIndex(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.Remove(filepath.Join(ws.root, "src", "solutions.rs")))

	_, err := ws.writer.Scaffold(5, problem.Default)
	assert.ErrorIs(t, err, ErrIndexMissing)
	assert.NoFileExists(t, filepath.Join(ws.root, "src", "solutions", "s_5.rs"))
}

func TestScaffoldRepairsMissingTrailingNewline(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(ws.root, "src", "solutions.rs"), []byte("mod s_1;"), 0644))

	_, err := ws.writer.Scaffold(2, problem.Default)
	require.NoError(t, err)
	assert.Equal(t, "mod s_1;\nmod s_2;\n", ws.read(t, "src", "solutions.rs"))
}

func TestScaffoldIndexAppendFailureKeepsSolution(t *testing.T) {
	ws := newWorkspace(t)
	index := filepath.Join(ws.root, "src", "solutions.rs")
	require.NoError(t, os.Remove(index))
	require.NoError(t, os.Mkdir(index, 0755))

	res, err := ws.writer.Scaffold(4, problem.Default)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "failed to open index")
	assert.Contains(t, err.Error(), "s_4.rs was kept")

	assert.Equal(t, "fn solve_4() {}\n", ws.read(t, "src", "solutions", "s_4.rs"))
}

func TestSolutionPath(t *testing.T) {
	l := Layout{SolutionsDir: "src/solutions", Extension: ".rs"}
	assert.Equal(t, filepath.Join("src", "solutions", "s_0.rs"), l.SolutionPath(0))
	assert.Equal(t, filepath.Join("src", "solutions", "s_1234.rs"), l.SolutionPath(1234))
}
