package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements that never carry document text
const noiseSelector = "script, style, noscript, nav, footer, header, template, iframe, svg"

// Elements that end a line of text
const blockSelector = "p, div, section, article, li, tr, br, h1, h2, h3, h4, h5, h6, pre, blockquote, dt, dd"

// ExtractText parses HTML and returns its visible text, one block per line
// with blank lines dropped.
// List items become markdown bullets so CleanText keeps them.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find("li").PrependHtml("- ")
	doc.Find(blockSelector).AfterHtml("\n")

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var lines []string
	for _, line := range strings.Split(root.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return CleanText(strings.Join(lines, "\n")), nil
}
