package assertion

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"digital.vasic.fluentassertions/pkg/execution"
	"digital.vasic.fluentassertions/pkg/formatting"
	"digital.vasic.fluentassertions/pkg/strdiff"
)

// StringAssertions holds assertions on a string subject.
type StringAssertions struct {
	base
	Subject string
}

// String starts assertions on s.
func String(t execution.TestingT, s string) *StringAssertions {
	return &StringAssertions{base: base{t: t}, Subject: s}
}

// Should returns the assertions; it exists for readability.
func (a *StringAssertions) Should() *StringAssertions { return a }

// As names the subject in failure messages.
func (a *StringAssertions) As(name string) *StringAssertions {
	a.name = name
	return a
}

func (a *StringAssertions) and() AndConstraint[*StringAssertions] {
	return AndConstraint[*StringAssertions]{And: a}
}

// Be asserts that the subject equals expected exactly. On failure
// the message names the first differing index and shows the text
// around it.
func (a *StringAssertions) Be(expected string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	equality{label: "{context:string}", verb: "to be"}.
		validate(a.verify(because), a.Subject, expected)
	return a.and()
}

// NotBe asserts that the subject differs from unexpected.
func (a *StringAssertions) NotBe(unexpected string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(a.Subject != unexpected).
		FailWith("Expected {context:string} not to be {0}{reason}.", unexpected)
	return a.and()
}

// BeEquivalentTo asserts equality ignoring case.
func (a *StringAssertions) BeEquivalentTo(expected string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	equality{label: "{context:string}", verb: "to be equivalent to", fold: true}.
		validate(a.verify(because), a.Subject, expected)
	return a.and()
}

// NotBeEquivalentTo asserts inequality ignoring case.
func (a *StringAssertions) NotBeEquivalentTo(unexpected string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!strings.EqualFold(a.Subject, unexpected)).
		FailWith("Expected {context:string} not to be equivalent to {0}{reason}, but they are.", unexpected)
	return a.and()
}

// BeEmpty asserts that the subject has no runes.
func (a *StringAssertions) BeEmpty(because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(a.Subject == "").
		FailWith("Expected {context:string} to be empty{reason}, but found {0}.", a.Subject)
	return a.and()
}

// NotBeEmpty asserts that the subject has at least one rune.
func (a *StringAssertions) NotBeEmpty(because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(a.Subject != "").
		FailWith("Did not expect {context:string} to be empty{reason}.")
	return a.and()
}

// NotBeBlank asserts that the subject has a non-whitespace rune.
func (a *StringAssertions) NotBeBlank(because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(strings.TrimSpace(a.Subject) != "").
		FailWith("Expected {context:string} not to be blank{reason}, but found {0}.", a.Subject)
	return a.and()
}

// HaveLength asserts the number of runes in the subject.
func (a *StringAssertions) HaveLength(expected int, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	actual := utf8.RuneCountInString(a.Subject)
	a.verify(because).
		ForCondition(actual == expected).
		FailWith("Expected {context:string} with length {0}{reason}, but found string {1} with length {2}.",
			expected, a.Subject, actual)
	return a.and()
}

// Contain asserts that the subject contains substr.
func (a *StringAssertions) Contain(substr string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(strings.Contains(a.Subject, substr)).
		FailWith("Expected {context:string} {0} to contain {1}{reason}.", a.Subject, substr)
	return a.and()
}

// NotContain asserts that the subject does not contain substr.
func (a *StringAssertions) NotContain(substr string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!strings.Contains(a.Subject, substr)).
		FailWith("Did not expect {context:string} {0} to contain {1}{reason}.", a.Subject, substr)
	return a.and()
}

// StartWith asserts that the subject begins with prefix. On failure
// the message names the first index where the two diverge.
func (a *StringAssertions) StartWith(prefix string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	v := a.verify(because)

	index := strdiff.IndexOfFirstMismatch(prefix, a.Subject)
	if index == strdiff.NoMismatch {
		v.ForCondition(true).FailWith("")
		return a.and()
	}

	// every rune of the subject matched, so the prefix is longer
	if index == utf8.RuneCountInString(a.Subject) {
		v.ForCondition(false).FailWith(
			"Expected {context:string} to start with {0}{reason}, but {1} is too short.",
			prefix, a.Subject)
		return a.and()
	}

	v.ForCondition(false).FailWith(
		"Expected {context:string} to start with {0}{reason}, but {1} {2}",
		prefix, a.Subject, near(a.Subject, index))
	return a.and()
}

// NotStartWith asserts that the subject does not begin with prefix.
func (a *StringAssertions) NotStartWith(prefix string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!strings.HasPrefix(a.Subject, prefix)).
		FailWith("Expected {context:string} {0} not to start with {1}{reason}.", a.Subject, prefix)
	return a.and()
}

// EndWith asserts that the subject ends with suffix.
func (a *StringAssertions) EndWith(suffix string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(strings.HasSuffix(a.Subject, suffix)).
		FailWith("Expected {context:string} {0} to end with {1}{reason}.", a.Subject, suffix)
	return a.and()
}

// NotEndWith asserts that the subject does not end with suffix.
func (a *StringAssertions) NotEndWith(suffix string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!strings.HasSuffix(a.Subject, suffix)).
		FailWith("Expected {context:string} {0} not to end with {1}{reason}.", a.Subject, suffix)
	return a.and()
}

// Match asserts that the subject matches a wildcard pattern, where
// '*' matches any text and '?' a single rune.
func (a *StringAssertions) Match(pattern string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(matchWildcard(a.Subject, pattern, false)).
		FailWith("Expected {context:string} to match {0}{reason}, but {1} does not.", pattern, a.Subject)
	return a.and()
}

// NotMatch asserts that the subject does not match a wildcard
// pattern.
func (a *StringAssertions) NotMatch(pattern string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(!matchWildcard(a.Subject, pattern, false)).
		FailWith("Did not expect {context:string} to match {0}{reason}, but {1} matches.", pattern, a.Subject)
	return a.and()
}

// MatchEquivalentOf is Match ignoring case.
func (a *StringAssertions) MatchEquivalentOf(pattern string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(matchWildcard(a.Subject, pattern, true)).
		FailWith("Expected {context:string} to match the equivalent of {0}{reason}, but {1} does not.", pattern, a.Subject)
	return a.and()
}

// MatchRegex asserts that the subject matches the regular
// expression. An invalid expression is reported as a failure.
func (a *StringAssertions) MatchRegex(expr string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	v := a.verify(because)

	re, err := regexp.Compile(expr)
	if err != nil {
		v.ForCondition(false).FailWith(
			"Cannot match {context:string} against {0}{reason}: {1}",
			expr, formatting.Raw(err.Error()))
		return a.and()
	}

	v.ForCondition(re.MatchString(a.Subject)).
		FailWith("Expected {context:string} to match regex {0}{reason}, but {1} does not match.", expr, a.Subject)
	return a.and()
}

// BeOneOf asserts that the subject equals one of values.
func (a *StringAssertions) BeOneOf(values []string, because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(slices.Contains(values, a.Subject)).
		FailWith("Expected {context:string} to be one of {0}{reason}, but found {1}.",
			formatting.Raw(formatting.Join(values)), a.Subject)
	return a.and()
}

// BeLowerCased asserts that the subject has no upper-case runes.
func (a *StringAssertions) BeLowerCased(because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(strings.ToLower(a.Subject) == a.Subject).
		FailWith("Expected all characters in {context:string} to be lower cased{reason}, but found {0}.", a.Subject)
	return a.and()
}

// BeUpperCased asserts that the subject has no lower-case runes.
func (a *StringAssertions) BeUpperCased(because ...any) AndConstraint[*StringAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(strings.ToUpper(a.Subject) == a.Subject).
		FailWith("Expected all characters in {context:string} to be upper cased{reason}, but found {0}.", a.Subject)
	return a.and()
}
