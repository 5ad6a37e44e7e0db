package optlex

import (
	"strings"
	"unicode/utf8"
)

// Value returns a value for the option that was just emitted.
//
// The value is the rest of the current unit if one is attached, as in
// --option=value or -ovalue, and otherwise the next raw unit, even if that
// unit looks like an option. A missing-value error naming the option is
// returned when the command line is exhausted.
func (p *Parser) Value() (string, error) {
	if value, _, ok := p.attachedValue(); ok {
		return value, nil
	}
	if p.pos < len(p.args) {
		value := p.args[p.pos]
		p.pos++
		return value, nil
	}
	return "", &ParseError{Type: ErrorTypeMissingValue, Option: p.lastOption}
}

// OptionalValue returns a value for the last option if one is plausibly
// there: the attached rest of the current unit, or the next raw unit when
// that unit does not look like an option. It reports false without consuming
// anything otherwise.
//
// This makes --color and --color=auto both work, with a following
// dash-prefixed unit left alone. Options with optional values are ambiguous
// by nature; prefer Value where possible.
func (p *Parser) OptionalValue() (string, bool) {
	if value, _, ok := p.attachedValue(); ok {
		return value, true
	}
	return p.nextIfNormal()
}

// nextIsNormal reports whether the next raw unit would be taken as a value
// by an option that is greedy but polite: anything after the -- terminator,
// a bare "-", and anything not starting with a dash.
func (p *Parser) nextIsNormal() bool {
	if p.hasPending() {
		panic("optlex: called nextIsNormal with a pending value")
	}
	if p.pos >= len(p.args) {
		return false
	}
	if p.state == stateFinished {
		return true
	}
	arg := p.args[p.pos]
	if arg == "-" {
		return true
	}
	return !strings.HasPrefix(arg, "-")
}

// nextIfNormal consumes and returns the next raw unit if nextIsNormal.
func (p *Parser) nextIfNormal() (string, bool) {
	if !p.nextIsNormal() {
		return "", false
	}
	value := p.args[p.pos]
	p.pos++
	return value, true
}

// ValuesIter yields the values of an option that takes several, as returned
// by Parser.Values. It stops before the first unit that looks like an
// option.
type ValuesIter struct {
	parser *Parser
}

// Next returns the next value, or false when the run of values is over.
func (it *ValuesIter) Next() (string, bool) {
	if it.parser == nil {
		return "", false
	}
	value, ok := it.parser.nextIfNormal()
	if !ok {
		it.parser = nil
	}
	return value, ok
}

// Collect drains the iterator into a slice.
func (it *ValuesIter) Collect() []string {
	var values []string
	for {
		value, ok := it.Next()
		if !ok {
			return values
		}
		values = append(values, value)
	}
}

// Values returns an iterator over the values of an option that takes one or
// more, as in --point 1 2 3. The iterator stops before the first unit that
// looks like an option and before the -- terminator.
//
// At least one value is guaranteed: if none is there, a missing-value error
// is returned up front. An attached value, as in --point=1, is an
// unexpected-value error; it is consumed, so parsing can continue.
func (p *Parser) Values() (*ValuesIter, error) {
	if p.hasPending() {
		value, _, _ := p.attachedValue()
		return nil, &ParseError{Type: ErrorTypeUnexpectedValue, Option: p.lastOption, Value: value}
	}
	if !p.nextIsNormal() {
		return nil, &ParseError{Type: ErrorTypeMissingValue, Option: p.lastOption}
	}
	return &ValuesIter{parser: p}, nil
}

// Text verifies that a value is valid UTF-8 and returns it, or a
// non-unicode-value error embedding the raw bytes.
func Text(value string) (string, error) {
	if !utf8.ValidString(value) {
		return "", &ParseError{Type: ErrorTypeNonUnicodeValue, Value: value}
	}
	return value, nil
}

// Parse converts a value with an arbitrary parse function, typically
// strconv.Atoi or time.ParseDuration. The value must be valid UTF-8; a
// conversion failure is wrapped in a parsing-failed error that keeps the
// original text.
func Parse[T any](value string, parse func(string) (T, error)) (T, error) {
	var zero T
	text, err := Text(value)
	if err != nil {
		return zero, err
	}
	result, err := parse(text)
	if err != nil {
		return zero, &ParseError{Type: ErrorTypeParsingFailed, Value: text, Err: err}
	}
	return result, nil
}
