package project

import (
	"github.com/harrison/manifold/internal/filespec"
)

// FileTypeInfo declares where files of one parse type live and how they are
// recognized.
type FileTypeInfo struct {
	// Paths are the source root directories, relative to the project root.
	Paths []string

	// Extensions are the recognized file extensions, in match order.
	Extensions []string

	// Parser is the catalog label for downstream consumers.
	Parser string
}

// FileTypes returns the discovery table for a project: for every parse
// type, the roots to search and the extensions to accept. Iterate it with
// filespec.ParseTypeOrder for deterministic processing.
func FileTypes(p *Project) map[filespec.ParseType]FileTypeInfo {
	return map[filespec.ParseType]FileTypeInfo{
		filespec.ParseTypeMacro: {
			Paths:      p.MacroPaths,
			Extensions: []string{".sql"},
			Parser:     filespec.ParseTypeMacro.ParserName(),
		},
		filespec.ParseTypeModel: {
			Paths:      p.ModelPaths,
			Extensions: []string{".sql", ".py"},
			Parser:     filespec.ParseTypeModel.ParserName(),
		},
		filespec.ParseTypeSnapshot: {
			Paths:      p.SnapshotPaths,
			Extensions: []string{".sql"},
			Parser:     filespec.ParseTypeSnapshot.ParserName(),
		},
		filespec.ParseTypeAnalysis: {
			Paths:      p.AnalysisPaths,
			Extensions: []string{".sql"},
			Parser:     filespec.ParseTypeAnalysis.ParserName(),
		},
		filespec.ParseTypeSingularTest: {
			Paths:      p.TestPaths,
			Extensions: []string{".sql"},
			Parser:     filespec.ParseTypeSingularTest.ParserName(),
		},
		filespec.ParseTypeGenericTest: {
			Paths:      p.GenericTestPaths(),
			Extensions: []string{".sql"},
			Parser:     filespec.ParseTypeGenericTest.ParserName(),
		},
		filespec.ParseTypeSeed: {
			Paths:      p.SeedPaths,
			Extensions: []string{".csv"},
			Parser:     filespec.ParseTypeSeed.ParserName(),
		},
		filespec.ParseTypeDocumentation: {
			Paths:      p.DocsPaths,
			Extensions: []string{".md"},
			Parser:     filespec.ParseTypeDocumentation.ParserName(),
		},
		filespec.ParseTypeSchema: {
			Paths:      p.AllSourcePaths(),
			Extensions: []string{".yml", ".yaml"},
			Parser:     filespec.ParseTypeSchema.ParserName(),
		},
	}
}
