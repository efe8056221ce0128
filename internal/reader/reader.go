// Package reader implements the read phase: it discovers the source files
// of every configured project, loads and hashes their content, reuses
// cached schema records when modification times are unchanged, and builds
// the run's file registry and per-project catalog.
package reader

import (
	"path/filepath"
	"strings"

	"github.com/harrison/manifold/internal/filespec"
	"github.com/harrison/manifold/internal/ignore"
	"github.com/harrison/manifold/internal/project"
	"github.com/harrison/manifold/internal/search"
)

// Logger receives read-phase progress messages.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}

// FileReader runs the read phase over a set of projects. It owns the
// registry and catalog for the lifetime of the run; no other component
// holds them across calls.
//
// SavedFiles is a read-only snapshot of the previous run's registry,
// consulted only by the schema cache decision. It is never mutated.
type FileReader struct {
	projects   []*project.Project
	savedFiles filespec.Registry
	log        Logger

	// Files is the run's registry, keyed by file identity.
	Files filespec.Registry

	// ParserFiles is the per-project, per-parser catalog of discovered
	// identities in discovery order.
	ParserFiles filespec.Catalog
}

// New creates a FileReader for the given projects. savedFiles may be nil
// when no previous-run snapshot is available; log may be nil.
func New(projects []*project.Project, savedFiles filespec.Registry, log Logger) *FileReader {
	if log == nil {
		log = nopLogger{}
	}
	return &FileReader{
		projects:    projects,
		savedFiles:  savedFiles,
		log:         log,
		Files:       make(filespec.Registry),
		ParserFiles: make(filespec.Catalog),
	}
}

// ReadFiles processes every project sequentially. Any error aborts the read
// phase for the whole run: a partial registry is never handed downstream.
func (r *FileReader) ReadFiles() error {
	for _, p := range r.projects {
		if err := r.readProject(p); err != nil {
			return err
		}
	}
	r.log.Infof("read %d projects, %d files total", len(r.projects), len(r.Files))
	return nil
}

func (r *FileReader) readProject(p *project.Project) error {
	matcher, err := ignore.ForProject(p.Root)
	if err != nil {
		return err
	}

	fileTypes := project.FileTypes(p)
	projectFiles := r.ParserFiles.ProjectFiles(p.Name)

	for _, parseType := range filespec.ParseTypeOrder {
		info, ok := fileTypes[parseType]
		if !ok {
			continue
		}
		ids, err := r.readFilesForParser(p, parseType, info, matcher)
		if err != nil {
			return err
		}
		projectFiles[info.Parser] = ids
		r.log.Debugf("%s: %s discovered %d files", p.Name, info.Parser, len(ids))
	}

	return nil
}

// readFilesForParser discovers and loads all files of one parse type,
// inserting each record into the registry and returning the identities in
// discovery order: root directory order, then extension order, then
// traversal order.
func (r *FileReader) readFilesForParser(p *project.Project, parseType filespec.ParseType, info project.FileTypeInfo, matcher *ignore.Matcher) ([]filespec.FileID, error) {
	ids := []filespec.FileID{}
	for _, extension := range info.Extensions {
		sources, err := r.sourceFilesFor(p, info.Paths, extension, parseType, matcher)
		if err != nil {
			return nil, err
		}
		for _, sf := range sources {
			id := sf.FileID()
			r.Files[id] = sf
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// sourceFilesFor turns search hits into loaded records. Seed files go
// through the size heuristic; singular test discovery skips anything under
// the reserved generic-test directory, which is owned exclusively by the
// generic test parse type; everything else goes through the normal loader
// (with the schema cache decision applied for schema files).
func (r *FileReader) sourceFilesFor(p *project.Project, rootDirs []string, extension string, parseType filespec.ParseType, matcher *ignore.Matcher) ([]*filespec.SourceFile, error) {
	locations, err := search.FilesystemSearch(p, rootDirs, extension, matcher)
	if err != nil {
		return nil, err
	}

	var sources []*filespec.SourceFile
	for _, fp := range locations {
		if parseType == filespec.ParseTypeSeed {
			sf, err := loadSeedSourceFile(fp, p.Name)
			if err != nil {
				return nil, err
			}
			sources = append(sources, sf)
			continue
		}

		if parseType == filespec.ParseTypeSingularTest && underGenericDir(fp) {
			continue
		}

		sf, err := loadSourceFile(fp, parseType, p.Name, r.savedFiles)
		if err != nil {
			return nil, err
		}
		// A nil record is an empty schema file; it contributes nothing.
		if sf != nil {
			sources = append(sources, sf)
		}
	}
	return sources, nil
}

// underGenericDir reports whether the file's first path component below its
// searched root is the reserved generic-test directory.
func underGenericDir(fp filespec.FilePath) bool {
	rel, err := filepath.Rel(fp.SearchedPath, fp.RelativePath)
	if err != nil {
		return false
	}
	first := rel
	if i := strings.IndexRune(rel, filepath.Separator); i >= 0 {
		first = rel[:i]
	}
	return first == project.GenericTestDirName
}
