// Package ingestion turns uploaded resumes and curricula into clean text.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`\s+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	// Soft hyphens and NBSPs are common in exported documents
	content = strings.ReplaceAll(content, "\u00ad", "")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings, bullets and indentation
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if bullet, rest, ok := splitBullet(trimmed); ok {
		return strings.Repeat(" ", indent) + bullet + " " + spaceRun.ReplaceAllString(rest, " ")
	}

	content := spaceRun.ReplaceAllString(trimmed, " ")
	return strings.Repeat(" ", indent) + content
}

// splitBullet separates a list marker from the item text.
// Unicode bullets from word processors become "-".
func splitBullet(line string) (marker, rest string, ok bool) {
	for _, m := range []string{"- ", "* "} {
		if strings.HasPrefix(line, m) {
			return m[:1], strings.TrimSpace(line[len(m):]), true
		}
	}
	for _, m := range []string{"• ", "· ", "▪ "} {
		if strings.HasPrefix(line, m) {
			return "-", strings.TrimSpace(line[len(m):]), true
		}
	}
	return "", "", false
}
