package optlex

import "fmt"

// ArgKind discriminates the variants of Arg.
type ArgKind int

const (
	// KindEnd marks the end of the command line.
	KindEnd ArgKind = iota
	// KindShort is a short option, e.g. 'q' for -q.
	KindShort
	// KindLong is a long option, e.g. "verbose" for --verbose.
	KindLong
	// KindValue is a positional argument, e.g. /dev/null.
	KindValue
)

// Arg is a single command line token found by Parser: an option, a
// positional argument, or the end-of-input marker.
type Arg struct {
	Kind ArgKind

	// Short is the option codepoint when Kind is KindShort.
	Short rune
	// Long is the option name, dashes excluded, when Kind is KindLong.
	// It shares storage with the parser's argument snapshot.
	Long string
	// Value is the raw unit when Kind is KindValue. It may contain bytes
	// that are not valid UTF-8.
	Value string
}

// IsShort reports whether a is the short option r.
func (a Arg) IsShort(r rune) bool {
	return a.Kind == KindShort && a.Short == r
}

// IsLong reports whether a is the long option name (without dashes).
func (a Arg) IsLong(name string) bool {
	return a.Kind == KindLong && a.Long == name
}

// String renders the token the way it was spelled on the command line.
func (a Arg) String() string {
	switch a.Kind {
	case KindShort:
		return fmt.Sprintf("-%c", a.Short)
	case KindLong:
		return "--" + a.Long
	case KindValue:
		return a.Value
	default:
		return ""
	}
}

// Unexpected converts an argument the caller does not recognize into an
// error suitable for display: options become unexpected-option errors,
// values become unexpected-argument errors.
func (a Arg) Unexpected() error {
	switch a.Kind {
	case KindShort:
		return &ParseError{Type: ErrorTypeUnexpectedOption, Option: fmt.Sprintf("-%c", a.Short)}
	case KindLong:
		return &ParseError{Type: ErrorTypeUnexpectedOption, Option: "--" + a.Long}
	default:
		return &ParseError{Type: ErrorTypeUnexpectedArgument, Value: a.Value}
	}
}
