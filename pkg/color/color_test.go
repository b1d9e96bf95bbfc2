package color_test

import (
	"testing"

	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGB_String(t *testing.T) {
	assert.Equal(t, "28323c", color.RGB{40, 50, 60}.String())
	assert.Equal(t, "000000", color.RGB{}.String())
	assert.Equal(t, "0f1f2f", color.RGB{15, 31, 47}.String())
}

func TestARGB_String(t *testing.T) {
	assert.Equal(t, "28323c46", color.ARGB{40, 50, 60, 70}.String())
	assert.Equal(t, "00000000", color.Transparent.String())
	assert.Equal(t, "71feb0a7", color.ARGB{113, 254, 176, 167}.String())
}

func TestParseRGB(t *testing.T) {
	c, ok := color.ParseRGB("facade")
	require.True(t, ok)
	assert.Equal(t, color.RGB{250, 202, 222}, c)

	c, ok = color.ParseRGB("FACADE")
	require.True(t, ok)
	assert.Equal(t, color.RGB{250, 202, 222}, c)
}

func TestParseARGB(t *testing.T) {
	c, ok := color.ParseARGB("deadbeef")
	require.True(t, ok)
	assert.Equal(t, color.ARGB{222, 173, 190, 239}, c)

	c, ok = color.ParseARGB("5ab07a9e")
	require.True(t, ok)
	assert.Equal(t, color.ARGB{90, 176, 122, 158}, c)
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "invalid", "fff", "facad", "facade0", "gggggg", "fa cade", "#facade"} {
		_, ok := color.ParseRGB(s)
		assert.False(t, ok, "rgb %q", s)
	}
	for _, s := range []string{"", "invalid", "facade", "deadbeef0", "deadbeeg", "0xdeadbe"} {
		_, ok := color.ParseARGB(s)
		assert.False(t, ok, "argb %q", s)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 15, 16, 127, 128, 254, 255} {
		rgb := color.RGB{v, 255 - v, v / 2}
		got, ok := color.ParseRGB(rgb.String())
		require.True(t, ok)
		assert.Equal(t, rgb, got)

		argb := color.ARGB{255 - v, v, v / 3, 255}
		gotA, ok := color.ParseARGB(argb.String())
		require.True(t, ok)
		assert.Equal(t, argb, gotA)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, color.White, color.MustParseRGB("ffffff"))
	assert.Equal(t, color.ARGB{255, 255, 0, 0}, color.MustParseARGB("ffff0000"))
	assert.Panics(t, func() { color.MustParseRGB("nope") })
	assert.Panics(t, func() { color.MustParseARGB("ffffff") })
}

func TestConversions(t *testing.T) {
	assert.Equal(t, color.ARGB{255, 1, 2, 3}, color.RGB{1, 2, 3}.Opaque())
	assert.Equal(t, color.RGB{1, 2, 3}, color.ARGB{9, 1, 2, 3}.RGB())
}
