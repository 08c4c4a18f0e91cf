package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRuns = regexp.MustCompile(`\s+`)
	blankLineRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes job posting text while preserving its structure:
// headings and bullet lines keep their markers, blank lines collapse to at
// most one separator.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLineRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Markdown-style headings lose their indentation but keep the marker.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullet items keep their indentation and marker.
	if isBulletLine(line) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := innerSpaceRuns.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
