// Package frontend splits Markdown documents into YAML frontmatter and
// body prose.
package frontend

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Frontmatter represents parsed frontmatter data
type Frontmatter struct {
	Data map[string]any
	Body string
}

// HasData reports whether the document carried a non-empty frontmatter block.
func (f *Frontmatter) HasData() bool {
	return len(f.Data) > 0
}

// ParseYAMLFrontmatter extracts YAML frontmatter from markdown content.
// The block must open on the first line; without it the whole content is
// body.
func ParseYAMLFrontmatter(content string) (*Frontmatter, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(content, delimiter) {
		return &Frontmatter{Data: map[string]any{}, Body: content}, nil
	}

	parts := strings.SplitN(content, delimiter, 3)
	if len(parts) < 3 {
		return &Frontmatter{Data: map[string]any{}, Body: content}, nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]any{}
	}

	return &Frontmatter{
		Data: data,
		Body: parts[2],
	}, nil
}

// Paragraphs returns the prose of a Markdown body: one entry per
// paragraph and per list item, with inline markup reduced to its text and
// soft line breaks folded into spaces. Headings, code blocks and raw HTML
// are dropped.
func Paragraphs(body string) []string {
	source := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var paras []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			var b strings.Builder
			inlineText(&b, n, source)
			if p := strings.Join(strings.Fields(b.String()), " "); p != "" {
				paras = append(paras, p)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return paras
}

// inlineText appends the plain text under n.
func inlineText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(source))
		case *ast.RawHTML:
			// dropped
		default:
			inlineText(b, c, source)
		}
	}
}
