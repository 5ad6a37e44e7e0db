package optlex

// RawArgs gives direct access to the raw units the parser has not consumed
// yet, bypassing option classification. It shares the parser's cursor:
// units taken through RawArgs are gone for the parser too, and units left
// untouched stay available to it.
type RawArgs struct {
	parser *Parser
}

// RawArgs takes over the remaining arguments as raw units.
//
// It must be called at an argument boundary. If an attached value is
// pending, as in --option=value with the value unconsumed, that value is
// consumed into an unexpected-value error and the next call succeeds.
func (p *Parser) RawArgs() (*RawArgs, error) {
	if p.hasPending() {
		value, _, _ := p.attachedValue()
		return nil, &ParseError{Type: ErrorTypeUnexpectedValue, Option: p.lastOption, Value: value}
	}
	return &RawArgs{parser: p}, nil
}

// TryRawArgs is like RawArgs but never consumes anything: it reports false
// if the parser is not at an argument boundary.
func (p *Parser) TryRawArgs() (*RawArgs, bool) {
	if p.hasPending() {
		return nil, false
	}
	return &RawArgs{parser: p}, true
}

// Next consumes and returns the next raw unit.
func (r *RawArgs) Next() (string, bool) {
	p := r.parser
	if p.pos >= len(p.args) {
		return "", false
	}
	value := p.args[p.pos]
	p.pos++
	return value, true
}

// Peek returns the next raw unit without consuming it.
func (r *RawArgs) Peek() (string, bool) {
	p := r.parser
	if p.pos >= len(p.args) {
		return "", false
	}
	return p.args[p.pos], true
}

// NextIf consumes and returns the next raw unit only if cond accepts it.
// Useful for taking over nonstandard arguments like -123 without disturbing
// normal parsing:
//
//	if value, ok := raw.NextIf(func(s string) bool { return isNumeric(s) }); ok {
//		...
//	}
func (r *RawArgs) NextIf(cond func(string) bool) (string, bool) {
	value, ok := r.Peek()
	if !ok || !cond(value) {
		return "", false
	}
	r.parser.pos++
	return value, true
}

// AsSlice returns the remaining raw units without consuming them; the
// parser will still see every unit in the slice.
func (r *RawArgs) AsSlice() []string {
	p := r.parser
	return p.args[p.pos:]
}

// Collect consumes all remaining raw units and returns them.
func (r *RawArgs) Collect() []string {
	p := r.parser
	rest := p.args[p.pos:]
	p.pos = len(p.args)
	if len(rest) == 0 {
		return nil
	}
	return append([]string(nil), rest...)
}
