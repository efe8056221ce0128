package schema

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, content string) map[string]any {
	t.Helper()
	doc, err := Parse("models/schema.yml", []byte(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	doc := mustParse(t, `
version: 2
models:
  - name: a
    description: first model
  - name: b
sources:
  - name: raw
    tables:
      - name: events
`)
	if err := Validate("models/schema.yml", doc); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateAcceptsMissingVersion(t *testing.T) {
	doc := mustParse(t, "models:\n  - name: a\n")
	if err := Validate("models/schema.yml", doc); err != nil {
		t.Fatalf("a document without a version marker must validate, got: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKey  string
		wantRule string
	}{
		{
			name:     "unsupported version",
			content:  "version: 3\nmodels:\n  - name: a\n",
			wantKey:  "version",
			wantRule: RuleUnsupportedVersion,
		},
		{
			name:     "string version",
			content:  "version: two\n",
			wantKey:  "version",
			wantRule: RuleUnsupportedVersion,
		},
		{
			name:     "recognized key is a mapping not a sequence",
			content:  "version: 2\nmodels:\n  name: a\n",
			wantKey:  "models",
			wantRule: RuleNotASequence,
		},
		{
			name:     "sequence element is not a mapping",
			content:  "version: 2\nseeds:\n  - just_a_string\n",
			wantKey:  "seeds",
			wantRule: RuleElementNotMapping,
		},
		{
			name:     "sequence element missing name",
			content:  "version: 2\nsources:\n  - description: nameless\n",
			wantKey:  "sources",
			wantRule: RuleMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.content)
			err := Validate("models/schema.yml", doc)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error is %T, want *ValidationError", err)
			}
			if verr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", verr.Key, tt.wantKey)
			}
			if verr.Rule != tt.wantRule {
				t.Errorf("Rule = %q, want %q", verr.Rule, tt.wantRule)
			}
			if verr.Path != "models/schema.yml" {
				t.Errorf("Path = %q, want the offending file path", verr.Path)
			}
			if !strings.Contains(verr.Error(), "models/schema.yml") {
				t.Errorf("error message must name the file, got: %v", verr)
			}
		})
	}
}

func TestValidateIgnoresUnrecognizedKeys(t *testing.T) {
	doc := mustParse(t, "version: 2\ncustom_section:\n  anything: goes\n")
	if err := Validate("models/schema.yml", doc); err != nil {
		t.Fatalf("unrecognized top-level keys are not validated, got: %v", err)
	}
}

func TestParseRejectsNonMappingRoot(t *testing.T) {
	if _, err := Parse("models/schema.yml", []byte("- a\n- b\n")); err == nil {
		t.Error("a sequence root must not parse as a schema document")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse("models/schema.yml", []byte("---\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("empty document parsed to %v, want empty mapping", doc)
	}
}
