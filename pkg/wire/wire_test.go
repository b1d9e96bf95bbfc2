package wire_test

import (
	"testing"

	"github.com/aretw0/ckbfx/pkg/wire"
	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"<", "%3C"},
		{"ckb-next is awesome.", "ckb-next%20is%20awesome."},
		{"Some fancy description!", "Some%20fancy%20description%21"},
		{"{9c1c97d5-c2e1-45a7-aba1-b059cfe9a0f6}", "%7B9c1c97d5-c2e1-45a7-aba1-b059cfe9a0f6%7D"},
		{"0:000000 100:facade", "0%3A000000%20100%3Afacade"},
		{"a/b~c_d", "a/b~c_d"},
		{"100%", "100%25"},
		{"ü", "%C3%BC"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, wire.Quote(tt.in))
		})
	}
}

func TestUnquote_Lenient(t *testing.T) {
	assert.Equal(t, "<>", wire.Unquote("%3C%3e"))
	assert.Equal(t, "100%", wire.Unquote("100%"))
	assert.Equal(t, "%zz", wire.Unquote("%zz"))
	assert.Equal(t, "%4", wire.Unquote("%4"))
	assert.Equal(t, "a%", wire.Unquote("a%"))
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", " ", "%", "%%20", "key=value pairs & more", "tab\there", "0:ff0000 100:00ff00"} {
		assert.Equal(t, s, wire.Unquote(wire.Quote(s)))
	}
}

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "begin keymap", "begin keymap"},
		{"newline", "frame\n", "frame"},
		{"crlf", "end run\r\n", "end run"},
		{"encoded value", "param STRING hello%21", "param STRING hello!"},
		{"gradient token", "param G 0%3Aff0000%20100%3A00ff00", "param G 0:ff0000 100:00ff00"},
		{"malformed escape", "param S 50%", "param S 50%"},
		{"empty tokens kept", "a  b", "a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wire.DecodeLine(tt.raw))
		})
	}
}

// A decoded token that contains a space is indistinguishable from two tokens
// once the line is rejoined.
func TestDecodeLine_TokenBoundaryIsLost(t *testing.T) {
	a := wire.DecodeLine("key A%20B down")
	b := wire.DecodeLine("key A B down")
	assert.Equal(t, a, b)
}

func TestEncodeLine(t *testing.T) {
	assert.Equal(t, "preset Fade%20in", wire.EncodeLine("preset", "Fade in"))
	assert.Equal(t, "preset Fade in", wire.DecodeLine(wire.EncodeLine("preset", "Fade in")))
}
