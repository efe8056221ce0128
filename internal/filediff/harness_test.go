package filediff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/manifold/internal/filespec"
	"github.com/harrison/manifold/internal/project"
	"github.com/harrison/manifold/internal/reader"
)

// TestApplyThenDiscover drives the harness the way a test driver does:
// materialize the diff onto a real tree, then run the normal discovery
// pipeline and observe the changed tree. The core has no diff-specific
// code path.
func TestApplyThenDiscover(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "models"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "models", "model_one.sql"), []byte("select 1 as fun"), 0644))
	p := project.Default("proj", root)

	fr := reader.New([]*project.Project{p}, nil, nil)
	require.NoError(t, fr.ReadFiles())
	require.Len(t, fr.ParserFiles["proj"]["ModelParser"], 1)

	artifact := `{
	  "deleted": ["models/model_one.sql"],
	  "changed": [],
	  "added": [{"path": "models/model_two.sql", "content": "select 123 as notfun"}]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(root, ArtifactName), []byte(artifact), 0644))

	diff, err := ReadIfPresent(root)
	require.NoError(t, err)
	require.NotNil(t, diff)
	require.NoError(t, diff.Apply(root))

	second := reader.New([]*project.Project{p}, fr.Files, nil)
	require.NoError(t, second.ReadFiles())

	assert.NotContains(t, second.Files, filespec.FileID("proj://models/model_one.sql"))
	require.Contains(t, second.Files, filespec.FileID("proj://models/model_two.sql"))
	assert.Equal(t, "select 123 as notfun",
		second.Files["proj://models/model_two.sql"].Contents)
}
