package assertion

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"digital.vasic.fluentassertions/pkg/execution"
	"digital.vasic.fluentassertions/pkg/formatting"
)

// JSONAssertions holds assertions on a JSON document. Paths use
// gjson syntax; bracket indexes such as "items[0].id" are accepted.
type JSONAssertions struct {
	base
	Subject string
}

// JSON starts assertions on the document doc.
func JSON(t execution.TestingT, doc string) *JSONAssertions {
	return &JSONAssertions{base: base{t: t}, Subject: doc}
}

// Should returns the assertions; it exists for readability.
func (a *JSONAssertions) Should() *JSONAssertions { return a }

// As names the document in failure messages.
func (a *JSONAssertions) As(name string) *JSONAssertions {
	a.name = name
	return a
}

func (a *JSONAssertions) and() AndConstraint[*JSONAssertions] {
	return AndConstraint[*JSONAssertions]{And: a}
}

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// jsonPath converts bracket indexes to gjson dot notation:
// "items[0].tags[1]" becomes "items.0.tags.1".
func jsonPath(path string) string {
	return strings.TrimPrefix(bracketIndex.ReplaceAllString(path, ".$1"), ".")
}

func (a *JSONAssertions) lookup(path string) gjson.Result {
	return gjson.Get(a.Subject, jsonPath(path))
}

// BeValid asserts that the subject is well-formed JSON.
func (a *JSONAssertions) BeValid(because ...any) AndConstraint[*JSONAssertions] {
	a.helper()
	a.verify(because).
		ForCondition(gjson.Valid(a.Subject)).
		FailWith("Expected {context:JSON} to be valid JSON{reason}, but found {0}.", a.Subject)
	return a.and()
}

// HavePath asserts that a value exists at path and returns it as
// Which.
func (a *JSONAssertions) HavePath(path string, because ...any) AndWhichConstraint[*JSONAssertions, gjson.Result] {
	a.helper()
	result := a.lookup(path)
	a.verify(because).
		ForCondition(result.Exists()).
		FailWith("Expected {context:JSON} to have a value at {0}{reason}, but it was not found.", path)
	return AndWhichConstraint[*JSONAssertions, gjson.Result]{And: a, Which: result}
}

// NotHavePath asserts that no value exists at path.
func (a *JSONAssertions) NotHavePath(path string, because ...any) AndConstraint[*JSONAssertions] {
	a.helper()
	result := a.lookup(path)
	a.verify(because).
		ForCondition(!result.Exists()).
		FailWith("Did not expect {context:JSON} to have a value at {0}{reason}, but found {1}.",
			path, formatting.Raw(result.Raw))
	return a.and()
}

// HaveValueAt asserts that the value at path equals expected once
// both are decoded as JSON, so 3 matches 3.0 and a struct matches
// the object it marshals to.
func (a *JSONAssertions) HaveValueAt(path string, expected any, because ...any) AndConstraint[*JSONAssertions] {
	a.helper()
	v := a.verify(because)

	encoded, err := json.Marshal(expected)
	if err != nil {
		v.ForCondition(false).FailWith(
			"Cannot compare {context:JSON} value at {0} with {1}{reason}: {2}",
			path, expected, formatting.Raw(err.Error()))
		return a.and()
	}
	var want any
	if err := json.Unmarshal(encoded, &want); err != nil {
		v.ForCondition(false).FailWith(
			"Cannot compare {context:JSON} value at {0} with {1}{reason}: {2}",
			path, expected, formatting.Raw(err.Error()))
		return a.and()
	}

	result := a.lookup(path)
	v.ForCondition(result.Exists()).
		FailWith("Expected {context:JSON} value at {0} to be {1}{reason}, but it was not found.",
			path, formatting.Raw(encoded)).
		Then().
		ForCondition(assert.ObjectsAreEqual(want, result.Value())).
		FailWith("Expected {context:JSON} value at {0} to be {1}{reason}, but found {2}.",
			path, formatting.Raw(encoded), formatting.Raw(result.Raw))
	return a.and()
}

// HaveLengthAt asserts the number of elements of the array at path.
func (a *JSONAssertions) HaveLengthAt(path string, expected int, because ...any) AndConstraint[*JSONAssertions] {
	a.helper()
	result := a.lookup(path)
	a.verify(because).
		ForCondition(result.IsArray()).
		FailWith("Expected {context:JSON} value at {0} to be an array{reason}, but found {1}.",
			path, formatting.Raw(rawOrMissing(result))).
		Then().
		ForCondition(len(result.Array()) == expected).
		FailWith("Expected {context:JSON} array at {0} to have {1} element(s){reason}, but found {2}.",
			path, expected, len(result.Array()))
	return a.and()
}

// MatchSchema asserts that the subject validates against the JSON
// Schema document schema. Every violation is listed on failure.
func (a *JSONAssertions) MatchSchema(schema string, because ...any) AndConstraint[*JSONAssertions] {
	a.helper()
	v := a.verify(because)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(a.Subject),
	)
	if err != nil {
		v.ForCondition(false).FailWith(
			"Cannot validate {context:JSON} against the schema{reason}: {0}",
			formatting.Raw(err.Error()))
		return a.and()
	}

	var violations []string
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	v.ForCondition(result.Valid()).
		FailWith("Expected {context:JSON} to match the schema{reason}, but found {0} violation(s): {1}",
			len(violations), formatting.Raw(strings.Join(violations, "; ")))
	return a.and()
}

func rawOrMissing(r gjson.Result) string {
	if !r.Exists() {
		return "nothing"
	}
	return r.Raw
}

