// Package strdiff locates the first position where two strings
// diverge and renders the surrounding text for failure messages.
// All indexes are rune indexes, not byte offsets.
package strdiff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// NoMismatch is returned by the mismatch locators when the actual
// string matches the expected string over its whole length.
const NoMismatch = -1

// ellipsis marks a truncated side of a context window.
const ellipsis = "..."

// segmentLength is the number of runes shown by Segment.
const segmentLength = 3

// IndexOfFirstMismatch returns the index of the first rune of
// actual that differs from expected. A rune of actual beyond the end
// of expected counts as a mismatch. NoMismatch is returned when
// actual is equal to expected or is a prefix of it; callers that
// need full equality check the lengths first.
//
// Examples:
//
//	IndexOfFirstMismatch("abcdef", "abcxef") -> 3
//	IndexOfFirstMismatch("abc", "abc")       -> NoMismatch
//	IndexOfFirstMismatch("abc", "abcde")     -> NoMismatch
//	IndexOfFirstMismatch("abcde", "abc")     -> 3
func IndexOfFirstMismatch(actual, expected string) int {
	return indexOfFirstMismatch(actual, expected, func(a, b rune) bool {
		return a == b
	})
}

// IndexOfFirstMismatchFold is IndexOfFirstMismatch with Unicode
// simple case folding applied to every rune pair.
func IndexOfFirstMismatchFold(actual, expected string) int {
	return indexOfFirstMismatch(actual, expected, equalFold)
}

func indexOfFirstMismatch(
	actual, expected string,
	eq func(a, b rune) bool,
) int {
	index := 0
	for actual != "" {
		if expected == "" {
			return index
		}
		ar, an := utf8.DecodeRuneInString(actual)
		er, en := utf8.DecodeRuneInString(expected)
		// Invalid bytes all decode to utf8.RuneError, so they are
		// compared as raw bytes instead.
		if ar == utf8.RuneError || er == utf8.RuneError {
			if actual[:an] != expected[:en] {
				return index
			}
		} else if !eq(ar, er) {
			return index
		}
		actual, expected = actual[an:], expected[en:]
		index++
	}

	return NoMismatch
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Window renders up to radius runes on each side of index, with the
// rune at index wrapped in brackets. Truncated sides are marked with
// "...". An index equal to the rune length marks the end of the
// string with empty brackets. Indexes outside [0, len] are clamped.
//
//	Window("abcdef", 3, 3)        -> "abc[d]ef"
//	Window("0123456789", 5, 2)    -> "...34[5]67..."
//	Window("abc", 3, 2)           -> "...bc[]"
func Window(s string, index, radius int) string {
	r := []rune(s)
	if radius < 0 {
		radius = 0
	}
	if index < 0 {
		index = 0
	}
	if index > len(r) {
		index = len(r)
	}

	start := max(index-radius, 0)
	end := min(index+1+radius, len(r))

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(ellipsis)
	}
	sb.WriteString(string(r[start:index]))
	sb.WriteByte('[')
	if index < len(r) {
		sb.WriteRune(r[index])
	}
	sb.WriteByte(']')
	if index+1 < end {
		sb.WriteString(string(r[index+1 : end]))
	}
	if end < len(r) {
		sb.WriteString(ellipsis)
	}

	return sb.String()
}

// Segment returns up to three runes of s starting at index. It
// returns an empty string when index is at or past the end.
func Segment(s string, index int) string {
	r := []rune(s)
	if index < 0 || index >= len(r) {
		return ""
	}
	end := min(index+segmentLength, len(r))
	return string(r[index:end])
}

// LineColumn converts a rune index into a 1-based line and column.
// Lines are separated by '\n'; an index at or past the end maps to
// the position just after the last rune.
func LineColumn(s string, index int) (line, column int) {
	line, column = 1, 1
	for i, r := range []rune(s) {
		if i >= index {
			break
		}
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// IsMultiline reports whether s spans more than one line.
func IsMultiline(s string) bool {
	return strings.ContainsRune(s, '\n')
}

// Diff returns a unified line diff from expected to actual, or an
// empty string when the two are identical.
func Diff(actual, expected string) string {
	if actual == expected {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
