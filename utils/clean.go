package utils

import (
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// CleanFileName replaces characters that are unsafe in file names.
func CleanFileName(input string) string {
	cleaned := unsafeFileChars.ReplaceAllString(input, "_")

	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}
