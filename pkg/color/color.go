// Package color holds the colour types exchanged with the daemon and the
// gradient model effects sample every frame.
package color

import (
	"encoding/hex"
	"fmt"
)

// RGB is an opaque colour with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ARGB is a colour with an alpha channel. The alpha channel comes first on the wire.
type ARGB struct {
	A, R, G, B uint8
}

// Predefined colours.
var (
	Black       = RGB{0, 0, 0}
	White       = RGB{255, 255, 255}
	Transparent = ARGB{}
)

// String renders the colour as six lowercase hex digits, e.g. "facade".
func (c RGB) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the colour as eight lowercase hex digits, alpha first.
func (c ARGB) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// Opaque returns c with full alpha.
func (c RGB) Opaque() ARGB {
	return ARGB{A: 255, R: c.R, G: c.G, B: c.B}
}

// RGB drops the alpha channel.
func (c ARGB) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ParseRGB decodes exactly six hex digits (any case).
// ok is false for any other input.
func ParseRGB(s string) (c RGB, ok bool) {
	b, ok := decodeChannels(s, 3)
	if !ok {
		return RGB{}, false
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, true
}

// ParseARGB decodes exactly eight hex digits (any case), alpha first.
func ParseARGB(s string) (c ARGB, ok bool) {
	b, ok := decodeChannels(s, 4)
	if !ok {
		return ARGB{}, false
	}
	return ARGB{A: b[0], R: b[1], G: b[2], B: b[3]}, true
}

// MustParseRGB is like ParseRGB but panics on malformed input.
// It is meant for literals in effect definitions.
func MustParseRGB(s string) RGB {
	c, ok := ParseRGB(s)
	if !ok {
		panic(fmt.Sprintf("color: invalid rgb literal %q", s))
	}
	return c
}

// MustParseARGB is like ParseARGB but panics on malformed input.
func MustParseARGB(s string) ARGB {
	c, ok := ParseARGB(s)
	if !ok {
		panic(fmt.Sprintf("color: invalid argb literal %q", s))
	}
	return c
}

func decodeChannels(s string, n int) ([]byte, bool) {
	if len(s) != 2*n {
		return nil, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}
