// Package docs extracts documentation block names from markdown
// documentation files so downstream doc resolution can reference them
// without reparsing.
package docs

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// BlockNames parses markdown content and returns the text of every level 1
// and level 2 heading, in document order. Headings with no text are
// skipped.
func BlockNames(contents []byte) ([]string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(contents))

	var names []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level <= 2 {
			name := extractText(heading, contents)
			if name != "" {
				names = append(names, name)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

// extractText collects the raw text of a node's inline children.
func extractText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(sb.String())
}
