// Package validate gates extracted descriptions. A rejected description is
// cleared by the caller, never raised as an error: extraction always
// succeeds with whatever partial data survived.
package validate

import (
	"strings"
	"unicode/utf8"
)

const (
	minChars = 50
	minWords = 20
)

// Phrases that mark an error page or a dead posting rather than job content.
var errorPhrases = []string{
	"page not found",
	"404 error",
	"sign in required",
	"login required",
	"access denied",
	"permission denied",
	"expired job",
	"job no longer available",
	"this position has been filled",
}

// Description reports whether text looks like genuine job content. The
// reason names the first rule that failed and is for logging only.
func Description(text string) (ok bool, reason string) {
	if utf8.RuneCountInString(text) < minChars {
		return false, "too_short"
	}
	low := strings.ToLower(text)
	for _, p := range errorPhrases {
		if strings.Contains(low, p) {
			return false, "error_page"
		}
	}
	if len(strings.Fields(text)) < minWords {
		return false, "too_few_words"
	}
	return true, ""
}
