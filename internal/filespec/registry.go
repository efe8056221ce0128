package filespec

// Registry maps file identities to their records for one read phase. It is
// owned exclusively by the read-phase orchestrator; later insertions for
// the same identity overwrite earlier ones.
type Registry map[FileID]*SourceFile

// Catalog records, per project and per parser label, the ordered file
// identities discovered in this run. Order is discovery order (root
// directory order, then extension order, then traversal order) and must be
// preserved: downstream consumers depend on it for deterministic output.
type Catalog map[string]map[string][]FileID

// ProjectFiles returns the parser-label map for a project, creating it if
// needed.
func (c Catalog) ProjectFiles(projectName string) map[string][]FileID {
	pf, ok := c[projectName]
	if !ok {
		pf = make(map[string][]FileID)
		c[projectName] = pf
	}
	return pf
}
