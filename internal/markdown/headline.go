package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxHeadlineLen = 60

// Headline returns a one-line label for a notification body: the first
// heading of any level, or failing that the first paragraph. Long labels are
// cut at 60 runes.
func Headline(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var heading, paragraph string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			heading = strings.TrimSpace(plainText(n, source))
			if heading != "" {
				return ast.WalkStop, nil
			}
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph:
			if paragraph == "" {
				paragraph = strings.TrimSpace(plainText(n, source))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	headline := heading
	if headline == "" {
		headline = paragraph
	}
	if headline == "" {
		return "(empty)"
	}

	headline = strings.Join(strings.Fields(headline), " ")
	return truncate(headline, maxHeadlineLen)
}

// plainText concatenates the inline text below n. Line breaks become spaces.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := child.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
