package friends

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Surnames common enough among visitors that they only add noise.
var surnames = regexp.MustCompile(`\b(malik|sir|kumar|sharma|vats|chauchan|poonia|singh|gupta|pal|tomar|shakya|bhardwaj|mitra|mudhgal|jain)\b`)

var lower = cases.Lower(language.Und)

// Normalize lower-cases a name, collapses whitespace and drops common
// surnames.
func Normalize(name string) string {
	s := collapse(lower.String(name))
	if s == "" {
		return ""
	}
	return collapse(surnames.ReplaceAllString(s, ""))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
