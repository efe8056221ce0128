// Package search walks a project's declared source root directories and
// yields location records for every file matching a given extension.
package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/manifold/internal/filespec"
	"github.com/harrison/manifold/internal/ignore"
	"github.com/harrison/manifold/internal/project"
)

// FilesystemSearch walks each declared root directory (relative to the
// project root) recursively and returns a FilePath for every regular file
// whose name ends with extension and whose project-relative path is not
// excluded by the ignore matcher.
//
// Root directories that do not exist are skipped: source trees commonly
// omit optional directories. Traversal within a directory is lexicographic,
// so discovery order is reproducible across runs on an unchanged tree.
func FilesystemSearch(p *project.Project, rootDirs []string, extension string, matcher *ignore.Matcher) ([]filespec.FilePath, error) {
	var found []filespec.FilePath

	for _, dir := range rootDirs {
		absDir := filepath.Join(p.Root, dir)

		info, err := os.Stat(absDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to access source path %s: %w", absDir, err)
		}
		if !info.IsDir() {
			continue
		}

		err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("error accessing %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !strings.HasSuffix(d.Name(), extension) {
				return nil
			}

			rel, err := filepath.Rel(p.Root, path)
			if err != nil {
				return fmt.Errorf("failed to relativize %s: %w", path, err)
			}
			if matcher.Matches(rel) {
				return nil
			}

			fi, err := d.Info()
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			found = append(found, filespec.FilePath{
				SearchedPath:     dir,
				RelativePath:     rel,
				ProjectRoot:      p.Root,
				FileSize:         fi.Size(),
				ModificationTime: modTimeEpoch(fi),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return found, nil
}

// modTimeEpoch converts a file's modification time to epoch seconds with
// nanosecond fraction. A zero time maps to the 0 sentinel, which disables
// schema cache reuse downstream.
func modTimeEpoch(fi fs.FileInfo) float64 {
	mt := fi.ModTime()
	if mt.IsZero() {
		return 0
	}
	return float64(mt.UnixNano()) / 1e9
}
