package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML renders a Markdown document with the common extensions enabled
// (strikethrough, fenced code, tables, ...).
func ToHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	html := markdown.ToHTML([]byte(md), p, nil)
	return strings.TrimSpace(string(html))
}

// ToHTMLBlocks renders every line of a converted sheet as a separate block.
// Sheets end paragraphs with a single newline that Markdown renderers would join.
func ToHTMLBlocks(md string) []string {
	var result []string
	for _, line := range strings.Split(strings.TrimRight(md, "\n"), "\n") {
		result = append(result, ToHTML(line))
	}
	return result
}
