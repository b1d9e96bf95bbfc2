package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is the set of colour types a gradient can interpolate.
type Color interface {
	RGB | ARGB
	String() string
}

// Stop is one point of a gradient. Position is a percentage in [0, 100].
type Stop[C Color] struct {
	Position float64
	Color    C
}

// String renders the stop as "position:hex".
func (s Stop[C]) String() string {
	return strconv.FormatFloat(s.Position, 'f', -1, 64) + ":" + s.Color.String()
}

// Gradient is a piecewise-linear colour ramp.
//
// ColorAt expects Stops to be sorted ascending by position. The order is not
// checked: unsorted or empty stop lists are a caller error.
type Gradient[C Color] struct {
	Stops []Stop[C]
}

// NewGradient builds a gradient from stops in the given order.
func NewGradient[C Color](stops ...Stop[C]) Gradient[C] {
	return Gradient[C]{Stops: append([]Stop[C](nil), stops...)}
}

// Len returns the number of stops.
func (g Gradient[C]) Len() int {
	return len(g.Stops)
}

// String renders the stops separated by single spaces, in stored order.
func (g Gradient[C]) String() string {
	parts := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// ColorAt samples the gradient. phase is clamped to [0, 1] and mapped onto
// the 0-100 stop positions; each channel of the result is the floor of the
// linear blend of the two enclosing stops.
//
// An empty gradient yields the zero colour. NaN samples as phase 0.
func (g Gradient[C]) ColorAt(phase float64) C {
	var zero C
	if len(g.Stops) == 0 {
		return zero
	}

	if math.IsNaN(phase) {
		phase = 0
	}
	p := math.Min(math.Max(phase*100, 0), 100)

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if p <= first.Position {
		return first.Color
	}
	if p >= last.Position {
		return last.Color
	}

	for i := 0; i < len(g.Stops)-1; i++ {
		left, right := g.Stops[i], g.Stops[i+1]
		if left.Position > p || p > right.Position {
			continue
		}
		span := right.Position - left.Position
		if span == 0 {
			return left.Color
		}
		rightShare := (p - left.Position) / span
		return lerp(left.Color, right.Color, 1-rightShare, rightShare)
	}

	return last.Color
}

func lerp[C Color](left, right C, leftShare, rightShare float64) C {
	mix := func(a, b uint8) uint8 {
		// The explicit conversion keeps the products from being fused.
		v := math.Floor(float64(float64(a)*leftShare) + float64(b)*rightShare)
		return uint8(math.Min(math.Max(v, 0), 255))
	}

	switch l := any(left).(type) {
	case RGB:
		r := any(right).(RGB)
		return any(RGB{R: mix(l.R, r.R), G: mix(l.G, r.G), B: mix(l.B, r.B)}).(C)
	case ARGB:
		r := any(right).(ARGB)
		return any(ARGB{A: mix(l.A, r.A), R: mix(l.R, r.R), G: mix(l.G, r.G), B: mix(l.B, r.B)}).(C)
	}
	return left
}

var (
	rgbStopPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?):([0-9A-Fa-f]{6})$`)
	argbStopPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?):([0-9A-Fa-f]{8})$`)
)

// ParseGradient reads space separated "position:rrggbb" stops.
// Tokens that do not match are dropped.
func ParseGradient(s string) Gradient[RGB] {
	return parseStops(s, rgbStopPattern, ParseRGB)
}

// ParseAGradient reads space separated "position:aarrggbb" stops.
// Tokens that do not match are dropped.
func ParseAGradient(s string) Gradient[ARGB] {
	return parseStops(s, argbStopPattern, ParseARGB)
}

func parseStops[C Color](s string, pattern *regexp.Regexp, parse func(string) (C, bool)) Gradient[C] {
	var g Gradient[C]
	for _, tok := range strings.Split(s, " ") {
		m := pattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		pos, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		c, ok := parse(m[2])
		if !ok {
			continue
		}
		g.Stops = append(g.Stops, Stop[C]{Position: pos, Color: c})
	}
	return g
}
