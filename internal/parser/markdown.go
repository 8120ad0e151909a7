package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jyothish28/intelligent-document-analyst/internal/fragment"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]fragment.Fragment, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var frags []fragment.Fragment
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title != "" {
				frags = append(frags, headingFragment(title, 1, node.Level))
			}
		default:
			if t := extractText(n, src); t != "" {
				frags = append(frags, bodyFragment(t, 1))
			}
		}
	}
	return frags, nil
}

// extractText gets the text content of a goldmark AST node. Block nodes with
// source segments yield those directly; container nodes recurse.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
			buf.WriteByte(' ')
		}
		return strings.TrimSpace(buf.String())
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(extractText(c, src))
			buf.WriteByte(' ')
		}
	}
	return strings.TrimSpace(buf.String())
}
