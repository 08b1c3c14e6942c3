package sanitization

import (
	"regexp"
	"strings"
)

// DefaultCoverLetterName is used when an upload arrives without a filename
const DefaultCoverLetterName = "cover-letter.pdf"

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	whitespaceRuns      = regexp.MustCompile(`\s+`)
)

// SanitizeFilename replaces every character other than ASCII letters,
// digits, '.', '_' and '-' with '_'. The result is stable under repeated
// application.
func SanitizeFilename(name string) string {
	if name == "" {
		name = DefaultCoverLetterName
	}
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// SanitizeLogValue collapses whitespace (including CR/LF) so user input
// cannot forge extra log lines
func SanitizeLogValue(input string) string {
	safe := whitespaceRuns.ReplaceAllString(input, " ")
	return strings.TrimSpace(safe)
}
