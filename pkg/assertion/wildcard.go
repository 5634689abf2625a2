package assertion

import (
	"regexp"
	"strings"
)

// wildcardRegexp translates a wildcard pattern into an anchored
// regular expression: '*' matches any run of runes (including
// newlines) and '?' matches exactly one rune.
func wildcardRegexp(pattern string, fold bool) *regexp.Regexp {
	var sb strings.Builder
	if fold {
		sb.WriteString("(?i)")
	}
	sb.WriteString("(?s)^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}

// matchWildcard reports whether s matches the wildcard pattern.
func matchWildcard(s, pattern string, fold bool) bool {
	return wildcardRegexp(pattern, fold).MatchString(s)
}
