package filespec

// SourceFile is the record produced for every discovered file. Records are
// rebuilt from scratch at the start of each read phase; the registry they
// live in is a per-run artifact, not a durable store.
//
// Schema files additionally carry SchemaData, the parsed structural YAML
// document. SchemaData is present exactly when the file's content was
// non-empty after trimming; an empty schema file yields no record at all.
type SourceFile struct {
	// Path is the location record captured at discovery time.
	Path FilePath

	// Checksum is the content digest. It is never the empty sentinel once
	// loading completes, except for big seeds which are deliberately
	// tracked without one.
	Checksum FileHash

	// ParseType is the file's category.
	ParseType ParseType

	// ProjectName is the owning project.
	ProjectName string

	// Contents is the file content with leading and trailing whitespace
	// trimmed. It is empty for seeds (bulk data is consumed elsewhere)
	// and for reused schema records (no disk read was performed).
	Contents string

	// SchemaData is the parsed YAML document for schema files, nil
	// otherwise.
	SchemaData map[string]any

	// DocBlocks lists the documentation block names extracted from
	// markdown documentation files, nil for other types.
	DocBlocks []string
}

// FileID returns the record's stable identity.
func (sf *SourceFile) FileID() FileID {
	return NewFileID(sf.ProjectName, sf.Path.RelativePath)
}

// BigSeed constructs the record for a seed file over the size threshold:
// location and type only, checksum left at the empty sentinel, no content.
func BigSeed(path FilePath, projectName string) *SourceFile {
	return &SourceFile{
		Path:        path,
		Checksum:    EmptyHash(),
		ParseType:   ParseTypeSeed,
		ProjectName: projectName,
	}
}
