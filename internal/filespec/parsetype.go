// Package filespec defines the core value types for the file read phase:
// parse types, file locations, content checksums, source file records, and
// the run-scoped registry and catalog that discovery produces.
package filespec

// ParseType categorizes a discovered source file. The category determines
// which source roots and extensions apply during discovery and which loading
// rule is used (normal content load, schema cache decision, or the seed size
// heuristic).
type ParseType int

const (
	// ParseTypeUnknown represents an unrecognized file category
	ParseTypeUnknown ParseType = iota
	// ParseTypeMacro represents macro definition files
	ParseTypeMacro
	// ParseTypeModel represents model files
	ParseTypeModel
	// ParseTypeSnapshot represents snapshot definition files
	ParseTypeSnapshot
	// ParseTypeAnalysis represents analysis files
	ParseTypeAnalysis
	// ParseTypeSingularTest represents standalone test files
	ParseTypeSingularTest
	// ParseTypeGenericTest represents reusable generic test definitions
	ParseTypeGenericTest
	// ParseTypeSeed represents bulk tabular data files
	ParseTypeSeed
	// ParseTypeDocumentation represents documentation files
	ParseTypeDocumentation
	// ParseTypeSchema represents structural schema declaration files
	ParseTypeSchema
)

// ParseTypeOrder is the canonical processing order for parse types within a
// project. Discovery iterates in this order so catalog construction and
// logging are reproducible across runs.
var ParseTypeOrder = []ParseType{
	ParseTypeMacro,
	ParseTypeModel,
	ParseTypeSnapshot,
	ParseTypeAnalysis,
	ParseTypeSingularTest,
	ParseTypeGenericTest,
	ParseTypeSeed,
	ParseTypeDocumentation,
	ParseTypeSchema,
}

// String returns the string representation of the ParseType
func (pt ParseType) String() string {
	switch pt {
	case ParseTypeMacro:
		return "macro"
	case ParseTypeModel:
		return "model"
	case ParseTypeSnapshot:
		return "snapshot"
	case ParseTypeAnalysis:
		return "analysis"
	case ParseTypeSingularTest:
		return "singular_test"
	case ParseTypeGenericTest:
		return "generic_test"
	case ParseTypeSeed:
		return "seed"
	case ParseTypeDocumentation:
		return "documentation"
	case ParseTypeSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// ParserName returns the downstream parser label used as the catalog key for
// files of this type.
func (pt ParseType) ParserName() string {
	switch pt {
	case ParseTypeMacro:
		return "MacroParser"
	case ParseTypeModel:
		return "ModelParser"
	case ParseTypeSnapshot:
		return "SnapshotParser"
	case ParseTypeAnalysis:
		return "AnalysisParser"
	case ParseTypeSingularTest:
		return "SingularTestParser"
	case ParseTypeGenericTest:
		return "GenericTestParser"
	case ParseTypeSeed:
		return "SeedParser"
	case ParseTypeDocumentation:
		return "DocumentationParser"
	case ParseTypeSchema:
		return "SchemaParser"
	default:
		return "UnknownParser"
	}
}

// ParseTypeFromString converts a parse type label back to its ParseType.
// Unrecognized labels map to ParseTypeUnknown.
func ParseTypeFromString(s string) ParseType {
	for _, pt := range ParseTypeOrder {
		if pt.String() == s {
			return pt
		}
	}
	return ParseTypeUnknown
}
