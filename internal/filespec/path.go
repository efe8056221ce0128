package filespec

import (
	"path/filepath"
	"strings"
)

// FileID is the stable identity of a logical source file across runs:
// "<project>://<relative path>" with forward slashes. Two records with the
// same FileID refer to the same logical file even if the physical project
// root moved between invocations.
type FileID string

// NewFileID builds a FileID from a project name and a project-relative path.
func NewFileID(projectName, relativePath string) FileID {
	return FileID(projectName + "://" + filepath.ToSlash(relativePath))
}

// Project returns the owning project name component of the id.
func (id FileID) Project() string {
	name, _, _ := strings.Cut(string(id), "://")
	return name
}

// RelativePath returns the project-relative path component of the id.
func (id FileID) RelativePath() string {
	_, rel, _ := strings.Cut(string(id), "://")
	return rel
}

// FilePath is the normalized location record for a discovered file. It is
// immutable once constructed for a given discovery pass.
type FilePath struct {
	// SearchedPath is the declared source root (relative to the project
	// root) under which the file was found, e.g. "models".
	SearchedPath string

	// RelativePath is the path relative to the project root, using the
	// platform separator.
	RelativePath string

	// ProjectRoot is the absolute path of the owning project root.
	ProjectRoot string

	// FileSize is the size of the file in bytes at discovery time.
	FileSize int64

	// ModificationTime is the file's last-modification time as epoch
	// seconds. Zero means the time is unknown, which disables schema
	// cache reuse for the file.
	ModificationTime float64
}

// AbsolutePath returns the full filesystem path of the file.
func (fp FilePath) AbsolutePath() string {
	return filepath.Join(fp.ProjectRoot, fp.RelativePath)
}

// OriginalPath returns the human-facing path used in error messages and
// logs. It is relative to the project root.
func (fp FilePath) OriginalPath() string {
	return fp.RelativePath
}

// SeedTooLarge reports whether the file exceeds the seed size threshold.
// Files exactly at the threshold are loaded normally.
func (fp FilePath) SeedTooLarge() bool {
	return fp.FileSize > MaxSeedSize
}

// MaxSeedSize is the seed size threshold in bytes. Seed files strictly
// larger than this are tracked by location only, without checksum or
// content.
const MaxSeedSize = 1 * 1024 * 1024
