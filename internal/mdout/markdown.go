// Package mdout exports article HTML as Markdown, for clients that want a
// plain-text editable artifact instead of a binary document.
package mdout

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ContentType is the MIME type of the produced file, for download headers.
const ContentType = "text/markdown; charset=utf-8"

// Render converts the article's HTML content into Markdown, prefixed with
// the title as a level-1 heading.
func Render(title, htmlContent string) (string, error) {
	body, err := htmltomarkdown.ConvertString(htmlContent)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("# ")
		b.WriteString(strings.TrimSpace(title))
		b.WriteString("\n\n")
	}
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}
