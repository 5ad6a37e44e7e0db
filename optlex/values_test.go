package optlex

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTakesAnything(t *testing.T) {
	// a value is taken as-is, even if it looks like an option
	p := parse("-o -x")
	require.True(t, next(t, p).IsShort('o'))
	require.Equal(t, "-x", value(t, p))

	p = parse("--out --")
	require.True(t, next(t, p).IsLong("out"))
	require.Equal(t, "--", value(t, p))

	// separate undecodable values pass through
	p = parse(bad("--foo @@@"))
	require.True(t, next(t, p).IsLong("foo"))
	require.Equal(t, bad("@@@"), value(t, p))
}

func TestOptionalValue(t *testing.T) {
	// attached values always count
	p := parse("--color=auto")
	require.True(t, next(t, p).IsLong("color"))
	v, ok := p.OptionalValue()
	require.True(t, ok)
	require.Equal(t, "auto", v)

	p = parse("-cblue")
	require.True(t, next(t, p).IsShort('c'))
	v, ok = p.OptionalValue()
	require.True(t, ok)
	require.Equal(t, "blue", v)

	// a separate normal unit counts
	p = parse("-c blue")
	require.True(t, next(t, p).IsShort('c'))
	v, ok = p.OptionalValue()
	require.True(t, ok)
	require.Equal(t, "blue", v)

	// bare "-" is normal
	p = parse("-c -")
	require.True(t, next(t, p).IsShort('c'))
	v, ok = p.OptionalValue()
	require.True(t, ok)
	require.Equal(t, "-", v)

	// an option-looking unit is left alone
	p = parse("-c -x")
	require.True(t, next(t, p).IsShort('c'))
	_, ok = p.OptionalValue()
	require.False(t, ok)
	require.True(t, next(t, p).IsShort('x'))

	// so is the terminator
	p = parse("-c -- blue")
	require.True(t, next(t, p).IsShort('c'))
	_, ok = p.OptionalValue()
	require.False(t, ok)
	require.Equal(t, Arg{Kind: KindValue, Value: "blue"}, next(t, p))

	// and exhaustion reports false without an error
	p = parse("--color")
	require.True(t, next(t, p).IsLong("color"))
	_, ok = p.OptionalValue()
	require.False(t, ok)
	require.Equal(t, KindEnd, next(t, p).Kind)

	// an empty attached value still counts
	p = parse("--color=")
	require.True(t, next(t, p).IsLong("color"))
	v, ok = p.OptionalValue()
	require.True(t, ok)
	require.Equal(t, "", v)
}

func TestValues(t *testing.T) {
	for _, tc := range []string{"-a b c d", "--a b c d", "-a b c d --"} {
		p := parse(tc)
		next(t, p)
		iter, err := p.Values()
		require.NoError(t, err, tc)
		require.Equal(t, []string{"b", "c", "d"}, iter.Collect(), tc)
		_, ok := iter.Next()
		require.False(t, ok, tc)
		require.Equal(t, KindEnd, next(t, p).Kind, tc)
	}

	// stops before the next option
	p := parse("-a b c -d e")
	next(t, p)
	iter, err := p.Values()
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, iter.Collect())
	require.True(t, next(t, p).IsShort('d'))

	// at least one value or an upfront error
	for _, tc := range []string{"-a", "--a", "-a -b", "-a -- b", "-a --"} {
		p := parse(tc)
		next(t, p)
		_, err := p.Values()
		var pe *ParseError
		require.ErrorAs(t, err, &pe, tc)
		require.Equal(t, ErrorTypeMissingValue, pe.Type, tc)
	}
}

func TestValuesAttached(t *testing.T) {
	// an attached value is a usage error; it is consumed so that
	// parsing can continue
	for _, tc := range []string{"--a=b c", "-ab c"} {
		p := parse(tc)
		next(t, p)
		_, err := p.Values()
		var pe *ParseError
		require.ErrorAs(t, err, &pe, tc)
		require.Equal(t, ErrorTypeUnexpectedValue, pe.Type, tc)
		require.Equal(t, "b", pe.Value, tc)
		require.Equal(t, Arg{Kind: KindValue, Value: "c"}, next(t, p), tc)
	}
}

func TestValuesLazy(t *testing.T) {
	// Values does not consume anything until the iterator is used
	p := parse("-a b c")
	next(t, p)
	_, err := p.Values()
	require.NoError(t, err)
	require.Equal(t, "b", value(t, p))
	require.Equal(t, Arg{Kind: KindValue, Value: "c"}, next(t, p))
}

func TestText(t *testing.T) {
	v, err := Text("-10")
	require.NoError(t, err)
	require.Equal(t, "-10", v)

	_, err = Text(bad("foo@"))
	require.EqualError(t, err, `argument is invalid unicode: "foo\xff"`)
}

func TestParse(t *testing.T) {
	n, err := Parse("-10", strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, -10, n)

	_, err = Parse("foo", strconv.Atoi)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrorTypeParsingFailed, pe.Type)
	require.Equal(t, "foo", pe.Value)
	var ne *strconv.NumError
	require.ErrorAs(t, err, &ne)
	require.EqualError(t, err, `cannot parse argument "foo": strconv.Atoi: parsing "foo": invalid syntax`)

	_, err = Parse(bad("1@"), strconv.Atoi)
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ErrorTypeNonUnicodeValue, pe.Type)
}
