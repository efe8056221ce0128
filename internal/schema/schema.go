// Package schema parses structural schema declaration files and performs
// minimal validation: an acceptable format version, and recognized
// top-level keys whose values are sequences of mappings that each carry a
// name.
package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only accepted value of the version marker.
const SupportedVersion = 2

// FileKeys are the recognized top-level keys of a schema file. Each one
// present must map to a sequence of mappings, and every mapping must
// contain a "name" key.
var FileKeys = []string{
	"models",
	"sources",
	"seeds",
	"snapshots",
	"macros",
	"analyses",
	"tests",
	"exposures",
	"groups",
}

// Validation rule identifiers reported in structural schema errors.
const (
	RuleUnsupportedVersion = "unsupported-version"
	RuleNotASequence       = "not-a-sequence"
	RuleElementNotMapping  = "element-not-a-mapping"
	RuleMissingName        = "missing-name"
)

// ValidationError is a structural schema error. It is fatal to the read
// phase and identifies the offending file, the key involved, and the rule
// that was broken.
type ValidationError struct {
	// Path is the human-facing path of the schema file.
	Path string

	// Key is the top-level key involved, empty for version errors.
	Key string

	// Rule is one of the Rule* identifiers.
	Rule string

	// Detail describes the violation.
	Detail string
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("the schema file at %s is invalid: %s", e.Path, e.Detail)
}

// Parse unmarshals schema file contents into a generic mapping. A document
// whose root is not a mapping is rejected.
func Parse(path string, contents []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the parsed document against the minimal structural rules.
// path is used for error reporting only.
func Validate(path string, doc map[string]any) error {
	if err := checkFormatVersion(path, doc); err != nil {
		return err
	}

	for _, key := range FileKeys {
		value, ok := doc[key]
		if !ok {
			continue
		}

		seq, ok := value.([]any)
		if !ok {
			return &ValidationError{
				Path:   path,
				Key:    key,
				Rule:   RuleNotASequence,
				Detail: fmt.Sprintf("the value of %q is not a list", key),
			}
		}

		for _, element := range seq {
			mapping, ok := element.(map[string]any)
			if !ok {
				return &ValidationError{
					Path:   path,
					Key:    key,
					Rule:   RuleElementNotMapping,
					Detail: fmt.Sprintf("a list element for %q is not a dictionary", key),
				}
			}
			if _, ok := mapping["name"]; !ok {
				return &ValidationError{
					Path:   path,
					Key:    key,
					Rule:   RuleMissingName,
					Detail: fmt.Sprintf("a list element for %q does not have a name attribute", key),
				}
			}
		}
	}

	return nil
}

// checkFormatVersion validates the optional version marker. A missing
// marker is accepted; a present one must equal SupportedVersion.
func checkFormatVersion(path string, doc map[string]any) error {
	value, ok := doc["version"]
	if !ok {
		return nil
	}
	if v, ok := value.(int); ok && v == SupportedVersion {
		return nil
	}
	return &ValidationError{
		Path:   path,
		Key:    "version",
		Rule:   RuleUnsupportedVersion,
		Detail: fmt.Sprintf("version %v is not supported (expected %d)", value, SupportedVersion),
	}
}
