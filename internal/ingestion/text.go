// Package ingestion reads job description text from local plain-text or
// HTML files and normalizes it before analysis. There is no URL fetching
// here: the tool makes no network calls.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]+`)
var excessBlankLines = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes JD text: CRLF to LF, trailing whitespace stripped,
// runs of spaces collapsed (bullet indentation preserved), at most two
// consecutive newlines, and the whole text trimmed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(trimmed, " ")
	if indent > 0 && isBulletLine(trimmed) {
		// Keep bullet indentation so nested requirement lists stay readable.
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}

// JDFromFile reads a JD from a local file and returns the cleaned text
// with metadata. Files ending in .html or .htm are stripped of markup
// first; everything else is treated as plain text.
func JDFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = JDFromHTML(string(content))
		if err != nil {
			return "", nil, err
		}
	default:
		text = CleanText(string(content))
	}

	return text, NewMetadata(text), nil
}
