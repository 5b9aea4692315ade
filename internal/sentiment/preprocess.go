package sentiment

import (
	"regexp"
	"strings"
)

var (
	mentionPattern    = regexp.MustCompile(`@\w+`)
	urlPattern        = regexp.MustCompile(`http[s]?://\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// PreprocessText rewrites raw chat text into the form the classifier model
// was trained on: user mentions collapse to "@user", URLs collapse to
// "http", and whitespace runs collapse to single spaces.
func PreprocessText(text string) string {
	text = mentionPattern.ReplaceAllString(text, "@user")
	text = urlPattern.ReplaceAllString(text, "http")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
