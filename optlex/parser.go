package optlex

import (
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-optlex/internal/osarg"
)

// parseState represents where the lexer is within the argument sequence.
type parseState int

const (
	// stateStart: the next call classifies a fresh raw unit.
	stateStart parseState = iota
	// statePendingValue: we have a value left over from --option=value.
	statePendingValue
	// stateShorts: we're in the middle of a cluster like -abc.
	stateShorts
	// stateFinished: we saw -- and no more options are coming.
	stateFinished
)

// Parser is a lexer for command line arguments.
//
// It owns a snapshot of the raw argument units and a cursor into them. The
// units are never mutated and may contain bytes that are not valid UTF-8;
// such units travel through the lexer unchanged.
//
// A Parser is not safe for concurrent use, but Clone produces an independent
// copy that can be handed to another goroutine or used for speculative
// parsing.
type Parser struct {
	args []string // raw units, program name excluded
	pos  int      // cursor: args[:pos] has been consumed

	state    parseState
	pending  string // unconsumed value from --option=value
	shorts   string // raw unit of the current short cluster, leading dash included
	shortPos int    // byte offset of the next codepoint in shorts
	shortsEq bool   // '=' handling, captured when the cluster was entered

	lastOption string // most recently emitted option, dashes included; diagnostics only
	binName    string
	hasBinName bool

	shortEquals bool
}

// FromEnv creates a parser from the process argument list.
//
// This is the usual way to create a Parser. The first unit is taken as the
// program name, see BinName.
func FromEnv() *Parser {
	return FromArgv(osarg.Args())
}

// FromArgv creates a parser from an explicit argument list whose first
// element is the program name, as in os.Args. The list is copied immediately.
func FromArgv(argv []string) *Parser {
	p := &Parser{}
	if len(argv) > 0 {
		p.binName = strings.ToValidUTF8(argv[0], "�")
		p.hasBinName = true
		argv = argv[1:]
	}
	p.args = append([]string(nil), argv...)
	return p
}

// FromArgs creates a parser from an explicit argument list that does not
// include a program name. BinName will report false. The list is copied
// immediately.
func FromArgs(args []string) *Parser {
	return &Parser{args: append([]string(nil), args...)}
}

// Clone returns an independent copy of the parser. The copy has its own
// cursor and cluster state; advancing one parser never affects the other.
func (p *Parser) Clone() *Parser {
	q := *p
	return &q
}

// BinName returns the program name, as in the zeroth unit of the process
// argument list. It is intended for use in messages: if the name was not
// valid UTF-8 it has been repaired with replacement characters.
func (p *Parser) BinName() (string, bool) {
	return p.binName, p.hasBinName
}

// SetShortEquals controls whether a '=' inside a short option unit separates
// an attached value. Enabled, -o=val attaches "val" to -o; disabled (the
// default), the '=' is an ordinary cluster codepoint and -o=val lexes as the
// options o, =, v, a, l.
//
// The setting is read when a short unit is first classified. Callers that
// need it for a single option should enable it just before that option's
// unit is parsed and restore the previous setting afterwards.
func (p *Parser) SetShortEquals(enabled bool) {
	p.shortEquals = enabled
}

// ShortEquals reports the current '=' handling for short option units.
func (p *Parser) ShortEquals() bool {
	return p.shortEquals
}

// Next returns the next option or positional argument.
//
// An Arg with Kind KindEnd means the command line has been exhausted; calling
// Next again keeps returning it.
//
// An unexpected-value error is returned if the previous option had an
// attached value that was never consumed, as in --option=value followed by
// another Next. An unexpected-option error is returned for a dash-prefixed
// unit whose option text does not decode as UTF-8; the raw unit is embedded
// in the error. Parsing can continue after either error.
func (p *Parser) Next() (Arg, error) {
	switch p.state {
	case statePendingValue:
		// Last time we got --option=value and the value wasn't used.
		value := p.pending
		p.pending = ""
		p.state = stateStart
		return Arg{}, &ParseError{Type: ErrorTypeUnexpectedValue, Option: p.lastOption, Value: value}

	case stateShorts:
		// Somewhere inside a -abc chain. Because this is Next, not Value,
		// the next codepoint is another option.
		rest := p.shorts[p.shortPos:]
		if rest == "" {
			p.state = stateStart
			break
		}
		ch, size := utf8.DecodeRuneInString(rest)
		switch {
		case ch == utf8.RuneError && size == 1:
			// Not valid text. Report the whole unit as an unrecognized
			// option instead of letting it masquerade as anything else.
			unit := p.shorts
			p.shortPos = len(p.shorts)
			p.state = stateStart
			p.lastOption = strings.ToValidUTF8(unit, "�")
			return Arg{}, &ParseError{Type: ErrorTypeUnexpectedOption, Option: p.lastOption, Value: unit}
		case ch == '=' && p.shortsEq && p.shortPos > 1:
			// -o=value with '=' splitting on: the tail belongs to -o.
			// A leading "-=" is still an option ('-=' exists in the wild).
			value, _, _ := p.attachedValue()
			return Arg{}, &ParseError{Type: ErrorTypeUnexpectedValue, Option: p.lastOption, Value: value}
		default:
			p.shortPos += size
			p.lastOption = "-" + string(ch)
			return Arg{Kind: KindShort, Short: ch}, nil
		}

	case stateFinished:
		if p.pos >= len(p.args) {
			return Arg{}, nil
		}
		value := p.args[p.pos]
		p.pos++
		return Arg{Kind: KindValue, Value: value}, nil
	}

	// Start of a fresh raw unit.
	if p.pos >= len(p.args) {
		return Arg{}, nil
	}
	arg := p.args[p.pos]
	p.pos++

	if arg == "--" {
		// The terminator itself produces no token. Once latched it is
		// never unlatched.
		p.state = stateFinished
		return p.Next()
	}

	if strings.HasPrefix(arg, "--") {
		// Long options have two forms: --option and --option=value.
		name := arg
		if i := strings.IndexByte(arg, '='); i != -1 {
			name = arg[:i]
		}
		if !utf8.ValidString(name) {
			// The value after '=' may be raw bytes; the name may not.
			p.lastOption = strings.ToValidUTF8(name, "�")
			return Arg{}, &ParseError{Type: ErrorTypeUnexpectedOption, Option: p.lastOption, Value: arg}
		}
		if len(name) < len(arg) {
			p.state = statePendingValue
			p.pending = arg[len(name)+1:]
		}
		p.lastOption = name
		// The token borrows from the stored unit; no copy is made.
		return Arg{Kind: KindLong, Long: name[2:]}, nil
	}

	if len(arg) > 1 && arg[0] == '-' {
		p.state = stateShorts
		p.shorts = arg
		p.shortPos = 1
		p.shortsEq = p.shortEquals
		return p.Next()
	}

	// Bare "-", the empty unit and anything not dash-prefixed, decodable
	// or not, is a value.
	return Arg{Kind: KindValue, Value: arg}, nil
}

// attachedValue consumes a value that is attached to the current option, as
// in --option=value or the "value" tail of -ovalue. hadEq reports whether
// the value was joined with an '=' sign.
func (p *Parser) attachedValue() (value string, hadEq bool, ok bool) {
	switch p.state {
	case statePendingValue:
		value = p.pending
		p.pending = ""
		p.state = stateStart
		return value, true, true
	case stateShorts:
		if p.shortPos >= len(p.shorts) {
			p.state = stateStart
			return "", false, false
		}
		pos := p.shortPos
		if p.shortsEq && p.shorts[pos] == '=' {
			pos++
			hadEq = true
		}
		value = p.shorts[pos:]
		p.shortPos = len(p.shorts)
		p.state = stateStart
		return value, hadEq, true
	default:
		return "", false, false
	}
}

// hasPending reports whether we're halfway through a unit, in other words
// whether attachedValue would succeed.
func (p *Parser) hasPending() bool {
	switch p.state {
	case statePendingValue:
		return true
	case stateShorts:
		return p.shortPos < len(p.shorts)
	default:
		return false
	}
}
