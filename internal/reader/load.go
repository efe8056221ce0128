package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/manifold/internal/docs"
	"github.com/harrison/manifold/internal/filespec"
	"github.com/harrison/manifold/internal/schema"
)

// LoadFileContents reads the full byte content of a file. An unreadable
// file (permissions, deletion mid-scan) is fatal for that file; the caller
// decides whether to abort the run.
func LoadFileContents(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// loadSourceFile builds the record for a non-seed file.
//
// The checksum is computed over the unstripped on-disk bytes; stored
// content is trimmed afterwards. For schema files, if savedFiles holds a
// prior record for the same identity with the same non-zero modification
// time, the checksum and parsed data are copied forward and no disk read is
// performed. Any other condition reloads and reparses.
//
// A schema file whose content is empty after trimming yields (nil, nil):
// the file contributes nothing and is not inserted into the registry.
func loadSourceFile(fp filespec.FilePath, parseType filespec.ParseType, projectName string, savedFiles filespec.Registry) (*filespec.SourceFile, error) {
	sf := &filespec.SourceFile{
		Path:        fp,
		Checksum:    filespec.EmptyHash(),
		ParseType:   parseType,
		ProjectName: projectName,
	}

	reused := false
	if parseType == filespec.ParseTypeSchema && savedFiles != nil {
		if old, ok := savedFiles[sf.FileID()]; ok {
			if fp.ModificationTime != 0 && old.Path.ModificationTime == fp.ModificationTime {
				sf.Checksum = old.Checksum
				sf.SchemaData = old.SchemaData
				reused = true
			}
		}
	}

	if !reused {
		contents, err := LoadFileContents(fp.AbsolutePath())
		if err != nil {
			return nil, err
		}
		sf.Checksum = filespec.HashFromContents(contents)
		sf.Contents = strings.TrimSpace(string(contents))
	}

	if parseType == filespec.ParseTypeSchema && !reused {
		if sf.Contents == "" {
			return nil, nil
		}
		doc, err := schema.Parse(fp.OriginalPath(), []byte(sf.Contents))
		if err != nil {
			return nil, err
		}
		if len(doc) == 0 {
			return nil, nil
		}
		if err := schema.Validate(fp.OriginalPath(), doc); err != nil {
			return nil, err
		}
		sf.SchemaData = doc
	}

	if parseType == filespec.ParseTypeDocumentation && sf.Contents != "" {
		blocks, err := docs.BlockNames([]byte(sf.Contents))
		if err != nil {
			return nil, fmt.Errorf("failed to parse documentation file %s: %w", fp.OriginalPath(), err)
		}
		sf.DocBlocks = blocks
	}

	return sf, nil
}

// loadSeedSourceFile builds the record for a seed file. Seeds over the size
// threshold are tracked by location only: no checksum, no content. Smaller
// seeds are hashed normally but their content is not retained; bulk data is
// consumed elsewhere.
func loadSeedSourceFile(fp filespec.FilePath, projectName string) (*filespec.SourceFile, error) {
	if fp.SeedTooLarge() {
		return filespec.BigSeed(fp, projectName), nil
	}

	contents, err := LoadFileContents(fp.AbsolutePath())
	if err != nil {
		return nil, err
	}

	return &filespec.SourceFile{
		Path:        fp,
		Checksum:    filespec.HashFromContents(contents),
		ParseType:   filespec.ParseTypeSeed,
		ProjectName: projectName,
	}, nil
}
