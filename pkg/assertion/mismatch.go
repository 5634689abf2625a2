package assertion

import (
	"strconv"
	"unicode/utf8"

	"digital.vasic.fluentassertions/pkg/config"
	"digital.vasic.fluentassertions/pkg/execution"
	"digital.vasic.fluentassertions/pkg/formatting"
	"digital.vasic.fluentassertions/pkg/strdiff"
)

// equality describes one string comparison for validateEquality.
type equality struct {
	// label names the compared value in the message, e.g.
	// "{context:string}" or "error message".
	label string
	// verb is the expectation, e.g. "to be".
	verb string
	// fold compares with Unicode case folding.
	fold bool
}

func (q equality) equal(actual, expected string) bool {
	if q.fold {
		return strdiff.IndexOfFirstMismatchFold(actual, expected) == strdiff.NoMismatch &&
			utf8.RuneCountInString(actual) == utf8.RuneCountInString(expected)
	}
	return actual == expected
}

func (q equality) mismatch(actual, expected string) int {
	if q.fold {
		return strdiff.IndexOfFirstMismatchFold(actual, expected)
	}
	return strdiff.IndexOfFirstMismatch(actual, expected)
}

// validate reports the first divergence between actual and
// expected. A length difference is reported before a positional
// one; when actual is a prefix of expected the divergence index is
// the length of actual.
func (q equality) validate(v *execution.Verification, actual, expected string) {
	if q.equal(actual, expected) {
		v.ForCondition(true).FailWith("")
		return
	}

	actualLen := utf8.RuneCountInString(actual)
	expectedLen := utf8.RuneCountInString(expected)

	index := q.mismatch(actual, expected)
	if index == strdiff.NoMismatch {
		index = actualLen
	}

	where := near(actual, index)
	if strdiff.IsMultiline(actual) || strdiff.IsMultiline(expected) {
		where = onLine(actual, expected, index)
	}

	if actualLen != expectedLen {
		v.ForCondition(false).FailWith(
			"Expected "+q.label+" "+q.verb+" {0} with a length of {1}{reason}, "+
				"but {2} has a length of {3}, {4}",
			expected, expectedLen, actual, actualLen, where,
		)
		return
	}

	v.ForCondition(false).FailWith(
		"Expected "+q.label+" "+q.verb+" {0}{reason}, but {1} {2}",
		expected, actual, where,
	)
}

// near renders `differs near "abc[d]ef" (index 3).`
func near(actual string, index int) formatting.Raw {
	window := strdiff.Window(actual, index, config.Current().ContextRadius)
	return formatting.Raw("differs near " + strconv.Quote(window) +
		" (index " + strconv.Itoa(index) + ").")
}

// onLine renders the line and column form plus a unified diff,
// used when either side spans several lines.
func onLine(actual, expected string, index int) formatting.Raw {
	line, column := strdiff.LineColumn(actual, index)
	msg := "differs on line " + strconv.Itoa(line) +
		" and column " + strconv.Itoa(column) +
		" (index " + strconv.Itoa(index) + ")."
	if diff := strdiff.Diff(actual, expected); diff != "" {
		msg += "\n" + diff
	}
	return formatting.Raw(msg)
}
