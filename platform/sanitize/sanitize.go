// Package sanitize cleans user-provided text before it is forwarded upstream.
package sanitize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
)

// StripHTML removes HTML tags, including ones hidden behind common entities.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = entityReplacer.Replace(result)
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Keyword strips markup, collapses whitespace runs to a single space and
// truncates to maxRunes. An all-markup input becomes "".
func Keyword(s string, maxRunes int) string {
	result := strings.Join(strings.Fields(StripHTML(s)), " ")
	if maxRunes > 0 && utf8.RuneCountInString(result) > maxRunes {
		result = strings.TrimSpace(string([]rune(result)[:maxRunes]))
	}
	return result
}
