package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/manifold/internal/ignore"
	"github.com/harrison/manifold/internal/project"
)

// writeTree materializes files (path -> content) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFilesystemSearchExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"models/a.sql":      "select 1",
		"models/b.py":       "def model(): pass",
		"models/readme.md":  "# notes",
		"models/sub/c.sql":  "select 2",
		"models/sub/d.yaml": "version: 2",
	})
	p := project.Default("proj", root)

	found, err := FilesystemSearch(p, []string{"models"}, ".sql", nil)
	if err != nil {
		t.Fatalf("FilesystemSearch: %v", err)
	}

	want := []string{
		filepath.Join("models", "a.sql"),
		filepath.Join("models", "sub", "c.sql"),
	}
	if len(found) != len(want) {
		t.Fatalf("found %d files, want %d", len(found), len(want))
	}
	for i, fp := range found {
		if fp.RelativePath != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, fp.RelativePath, want[i])
		}
		if fp.SearchedPath != "models" {
			t.Errorf("found[%d].SearchedPath = %q, want models", i, fp.SearchedPath)
		}
		if fp.ModificationTime == 0 {
			t.Errorf("found[%d] has zero modification time", i)
		}
		if fp.ProjectRoot != root {
			t.Errorf("found[%d].ProjectRoot = %q, want %q", i, fp.ProjectRoot, root)
		}
	}
}

func TestFilesystemSearchMissingDirIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"models/a.sql": "select 1"})
	p := project.Default("proj", root)

	found, err := FilesystemSearch(p, []string{"snapshots", "models"}, ".sql", nil)
	if err != nil {
		t.Fatalf("missing source dir must not be an error, got: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("found %d files, want 1", len(found))
	}
}

func TestFilesystemSearchDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"models/zeta.sql":    "z",
		"models/alpha.sql":   "a",
		"models/mid/one.sql": "m",
	})
	p := project.Default("proj", root)

	first, err := FilesystemSearch(p, []string{"models"}, ".sql", nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := FilesystemSearch(p, []string{"models"}, ".sql", nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join("models", "alpha.sql"),
		filepath.Join("models", "mid", "one.sql"),
		filepath.Join("models", "zeta.sql"),
	}
	for i := range want {
		if first[i].RelativePath != want[i] {
			t.Errorf("first[%d] = %q, want %q", i, first[i].RelativePath, want[i])
		}
		if second[i].RelativePath != first[i].RelativePath {
			t.Errorf("traversal order changed between runs at index %d", i)
		}
	}
}

func TestFilesystemSearchRespectsIgnore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"models/keep.sql":         "select 1",
		"models/scratch/drop.sql": "select 2",
	})
	p := project.Default("proj", root)
	matcher := ignore.FromLines("models/scratch/")

	found, err := FilesystemSearch(p, []string{"models"}, ".sql", matcher)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 || found[0].RelativePath != filepath.Join("models", "keep.sql") {
		t.Fatalf("ignore filter not applied, found: %v", found)
	}
}

func TestFilesystemSearchMultipleRoots(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"macros/a.sql":       "a",
		"extra_macros/b.sql": "b",
	})
	p := project.Default("proj", root)

	found, err := FilesystemSearch(p, []string{"macros", "extra_macros"}, ".sql", nil)
	if err != nil {
		t.Fatal(err)
	}

	// Root directory order comes before traversal order.
	want := []string{
		filepath.Join("macros", "a.sql"),
		filepath.Join("extra_macros", "b.sql"),
	}
	if len(found) != 2 {
		t.Fatalf("found %d files, want 2", len(found))
	}
	for i := range want {
		if found[i].RelativePath != want[i] {
			t.Errorf("found[%d] = %q, want %q", i, found[i].RelativePath, want[i])
		}
	}
}
