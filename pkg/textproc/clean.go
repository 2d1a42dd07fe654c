package textproc

import "strings"

// CleanExtractedText normalizes raw page text from the extraction layer:
// drops very short lines and bare page numbers, then collapses the rest
// onto single spaces.
func CleanExtractedText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		if isDigits(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}

	return NormalizeWhitespace(strings.Join(cleaned, " "))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
