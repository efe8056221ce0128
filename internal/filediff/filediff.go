// Package filediff reads and applies a diff-override artifact: a JSON
// document describing added, changed, and deleted files. A test driver
// applies it to a real project tree before discovery runs, so the
// production pipeline observes a different tree without any test-only
// branching inside it.
package filediff

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/manifold/internal/filelock"
)

// ArtifactName is the fixed name of the diff artifact in a project root.
const ArtifactName = "file_diff.json"

// FileChange is one added or changed file: a project-relative path and its
// new content.
type FileChange struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FileDiff describes a set of filesystem changes to materialize before
// discovery.
type FileDiff struct {
	// Deleted lists project-relative paths to remove.
	Deleted []string `json:"deleted"`

	// Changed lists files to overwrite with new content.
	Changed []FileChange `json:"changed"`

	// Added lists files to create.
	Added []FileChange `json:"added"`
}

// Read parses a diff artifact from path.
func Read(path string) (*FileDiff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file diff %s: %w", path, err)
	}
	var diff FileDiff
	if err := json.Unmarshal(data, &diff); err != nil {
		return nil, fmt.Errorf("failed to parse file diff %s: %w", path, err)
	}
	return &diff, nil
}

// ReadIfPresent parses the artifact at its fixed name under projectRoot,
// returning nil without error when it does not exist.
func ReadIfPresent(projectRoot string) (*FileDiff, error) {
	path := filepath.Join(projectRoot, ArtifactName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return Read(path)
}

// Apply materializes the diff onto the tree rooted at projectRoot:
// deletions first, then changed and added contents via atomic writes.
// Deleting a path that does not exist is not an error.
func (d *FileDiff) Apply(projectRoot string) error {
	for _, rel := range d.Deleted {
		path := filepath.Join(projectRoot, rel)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete %s: %w", path, err)
		}
	}

	for _, change := range append(d.Changed, d.Added...) {
		path := filepath.Join(projectRoot, change.Path)
		if err := filelock.AtomicWrite(path, []byte(change.Content)); err != nil {
			return err
		}
	}

	return nil
}
