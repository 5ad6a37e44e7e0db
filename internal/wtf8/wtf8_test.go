package wtf8

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestEncodeUTF16(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"empty", nil, ""},
		{"ascii", []uint16{'f', 'o', 'o'}, "foo"},
		{"bmp", []uint16{0xB5}, "µ"},
		{"surrogate pair", []uint16{0xD83D, 0xDCA3}, "💣"},
		{"unpaired high", []uint16{0xD800}, "\xED\xA0\x80"},
		{"unpaired low", []uint16{0xDFFF}, "\xED\xBF\xBF"},
		{"lone high before text", []uint16{0xD800, 'a'}, "\xED\xA0\x80a"},
		{"low before high", []uint16{0xDC00, 0xD800}, "\xED\xB0\x80\xED\xA0\x80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodeUTF16(tt.units))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]uint16{
		nil,
		{'f', 'o', 'o'},
		utf16.Encode([]rune("aµ𝄞")),
		{0xD800},
		{0xDC00, 0xD800},
		{'a', 0xD800, 'b', 0xDFFF, 'c'},
		{0xD83D, 0xDCA3, 0xD83D},
	}
	for _, units := range cases {
		got := DecodeUTF16(EncodeUTF16(units))
		if len(units) == 0 {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, units, got)
	}
}

func TestDecodeUTF16PlainText(t *testing.T) {
	require.Equal(t, utf16.Encode([]rune("aµ𝄞")), DecodeUTF16("aµ𝄞"))
}

func TestDecodeUTF16InvalidBytes(t *testing.T) {
	// bytes that are neither UTF-8 nor an encoded surrogate degrade to
	// the replacement character
	require.Equal(t, []uint16{0xFFFD, 'a'}, DecodeUTF16("\xFFa"))
	require.Equal(t, []uint16{0xFFFD}, DecodeUTF16("\xED"))
}
