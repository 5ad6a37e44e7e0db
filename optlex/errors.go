package optlex

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-optlex/internal/fuzzy"
)

// ErrorType identifies the kind of failure a ParseError reports.
type ErrorType string

const (
	// ErrorTypeMissingValue: an option needed a value and none was there.
	ErrorTypeMissingValue ErrorType = "missing_value"
	// ErrorTypeUnexpectedOption: an option was not expected, or could not
	// be decoded as text.
	ErrorTypeUnexpectedOption ErrorType = "unexpected_option"
	// ErrorTypeUnexpectedArgument: a positional argument was not expected.
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	// ErrorTypeUnexpectedValue: an option got a value it did not expect,
	// as in --flag=value for a flag that takes none.
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	// ErrorTypeNonUnicodeValue: a value had to be text and was not.
	ErrorTypeNonUnicodeValue ErrorType = "non_unicode_value"
	// ErrorTypeParsingFailed: a value could not be converted, see Err.
	ErrorTypeParsingFailed ErrorType = "parsing_failed"
	// ErrorTypeCustom wraps a free-form caller error, see Err.
	ErrorTypeCustom ErrorType = "custom"
)

// ParseError is the error type for everything that can go wrong while
// lexing a command line. Type tells the variant apart; the other fields are
// filled in as applicable.
type ParseError struct {
	Type ErrorType

	// Option is the option involved, dashes included, possibly repaired
	// with replacement characters if the original was not valid UTF-8.
	Option string
	// Value is the value or raw unit involved. It may contain bytes that
	// are not valid UTF-8; rendering always quotes it.
	Value string
	// Suggestion is an optional "did you mean" candidate, dashes included.
	Suggestion string
	// Err is the underlying error for parsing_failed and custom.
	Err error
}

// Error renders a human-readable message for the failure.
func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeMissingValue:
		if e.Option == "" {
			return "missing argument"
		}
		return fmt.Sprintf("missing argument for option '%s'", e.Option)
	case ErrorTypeUnexpectedOption:
		msg := fmt.Sprintf("invalid option '%s'", e.Option)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean '%s'?)", e.Suggestion)
		}
		return msg
	case ErrorTypeUnexpectedArgument:
		return fmt.Sprintf("unexpected argument %q", e.Value)
	case ErrorTypeUnexpectedValue:
		return fmt.Sprintf("unexpected argument for option '%s': %q", e.Option, e.Value)
	case ErrorTypeNonUnicodeValue:
		return fmt.Sprintf("argument is invalid unicode: %q", e.Value)
	case ErrorTypeParsingFailed:
		return fmt.Sprintf("cannot parse argument %q: %v", e.Value, e.Err)
	case ErrorTypeCustom:
		return e.Err.Error()
	default:
		return fmt.Sprintf("unknown error (%s)", e.Type)
	}
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WithSuggestion fills in a "did you mean" hint for an unexpected-option
// error, picked from candidates by edit distance. Candidates are option names
// without dashes. On any other error type it is a no-op. It returns the
// receiver for chaining.
func (e *ParseError) WithSuggestion(candidates ...string) *ParseError {
	if e.Type != ErrorTypeUnexpectedOption {
		return e
	}
	name := strings.TrimLeft(e.Option, "-")
	best := fuzzy.Best(name, candidates, 2)
	if best == "" {
		return e
	}
	if len(best) == 1 {
		e.Suggestion = "-" + best
	} else {
		e.Suggestion = "--" + best
	}
	return e
}

// Errorf creates a custom ParseError from a format string, for failures the
// caller discovers on its own, such as a value being out of range.
func Errorf(format string, args ...any) *ParseError {
	return &ParseError{Type: ErrorTypeCustom, Err: fmt.Errorf(format, args...)}
}

// NewError wraps an existing error in a custom ParseError. If err already is
// a *ParseError it is returned unchanged.
func NewError(err error) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Type: ErrorTypeCustom, Err: err}
}
