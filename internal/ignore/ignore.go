// Package ignore filters discovered paths against a project-level ignore
// file using gitignore wildcard syntax.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// FileName is the fixed name of the ignore-declaration file looked up in
// the project root.
const FileName = ".manifoldignore"

// Matcher decides whether a project-relative path is excluded from
// discovery. A nil Matcher, or one built from a missing ignore file,
// rejects nothing.
type Matcher struct {
	spec *gitignore.GitIgnore
}

// ForProject compiles the ignore file found in projectRoot, if any.
// Absence of the file is not an error and yields a matcher that rejects
// nothing. Pattern lines are compiled best-effort: gitignore syntax has no
// strictly invalid lines, and anything unmatched simply never matches.
func ForProject(projectRoot string) (*Matcher, error) {
	path := filepath.Join(projectRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	return &Matcher{spec: gitignore.CompileIgnoreLines(lines...)}, nil
}

// FromLines compiles a matcher directly from pattern lines.
func FromLines(lines ...string) *Matcher {
	return &Matcher{spec: gitignore.CompileIgnoreLines(lines...)}
}

// Matches reports whether the project-relative path is excluded.
func (m *Matcher) Matches(relativePath string) bool {
	if m == nil || m.spec == nil {
		return false
	}
	return m.spec.MatchesPath(filepath.ToSlash(relativePath))
}
