package param

import (
	"github.com/aretw0/ckbfx/pkg/color"
)

// Kind is the wire name of a parameter type.
type Kind string

const (
	KindLong      Kind = "long"
	KindDouble    Kind = "double"
	KindBool      Kind = "bool"
	KindRGB       Kind = "rgb"
	KindARGB      Kind = "argb"
	KindGradient  Kind = "gradient"
	KindAGradient Kind = "agradient"
	KindAngle     Kind = "angle"
	KindString    Kind = "string"
	KindLabel     Kind = "label"
)

// Kinds lists every parameter kind in declaration order.
var Kinds = []Kind{
	KindLong, KindDouble, KindBool, KindRGB, KindARGB,
	KindGradient, KindAGradient, KindAngle, KindString, KindLabel,
}

// Param is implemented only by the kinds declared in this package.
type Param interface {
	ParamName() string
	Kind() Kind
	sealed()
}

// Long is an integer parameter.
type Long struct {
	Name     string
	Prefix   string
	Postfix  string
	Default  int64
	Min, Max int64

	Value int64
}

// Double is a real-valued parameter.
type Double struct {
	Name     string
	Prefix   string
	Postfix  string
	Default  float64
	Min, Max float64

	Value float64
}

// Bool is a checkbox.
type Bool struct {
	Name    string
	Text    string
	Default bool

	Value bool
}

// RGB is an opaque colour picker.
type RGB struct {
	Name    string
	Prefix  string
	Postfix string
	Default color.RGB

	Value color.RGB
}

// ARGB is a colour picker with alpha.
type ARGB struct {
	Name    string
	Prefix  string
	Postfix string
	Default color.ARGB

	Value color.ARGB
}

// Gradient is an opaque gradient editor.
type Gradient struct {
	Name    string
	Prefix  string
	Postfix string
	Default color.Gradient[color.RGB]

	Value color.Gradient[color.RGB]
}

// AGradient is a gradient editor with alpha.
type AGradient struct {
	Name    string
	Prefix  string
	Postfix string
	Default color.Gradient[color.ARGB]

	Value color.Gradient[color.ARGB]
}

// Angle is a direction in degrees.
type Angle struct {
	Name    string
	Prefix  string
	Postfix string
	Default int64

	Value int64
}

// String is free text.
type String struct {
	Name    string
	Prefix  string
	Postfix string
	Default string

	Value string
}

// Label is static text shown in the settings dialog. It carries no value.
type Label struct {
	Name string
	Text string
}

func (p *Long) ParamName() string      { return p.Name }
func (p *Double) ParamName() string    { return p.Name }
func (p *Bool) ParamName() string      { return p.Name }
func (p *RGB) ParamName() string       { return p.Name }
func (p *ARGB) ParamName() string      { return p.Name }
func (p *Gradient) ParamName() string  { return p.Name }
func (p *AGradient) ParamName() string { return p.Name }
func (p *Angle) ParamName() string     { return p.Name }
func (p *String) ParamName() string    { return p.Name }
func (p *Label) ParamName() string     { return p.Name }

func (*Long) Kind() Kind      { return KindLong }
func (*Double) Kind() Kind    { return KindDouble }
func (*Bool) Kind() Kind      { return KindBool }
func (*RGB) Kind() Kind       { return KindRGB }
func (*ARGB) Kind() Kind      { return KindARGB }
func (*Gradient) Kind() Kind  { return KindGradient }
func (*AGradient) Kind() Kind { return KindAGradient }
func (*Angle) Kind() Kind     { return KindAngle }
func (*String) Kind() Kind    { return KindString }
func (*Label) Kind() Kind     { return KindLabel }

func (*Long) sealed()      {}
func (*Double) sealed()    {}
func (*Bool) sealed()      {}
func (*RGB) sealed()       {}
func (*ARGB) sealed()      {}
func (*Gradient) sealed()  {}
func (*AGradient) sealed() {}
func (*Angle) sealed()     {}
func (*String) sealed()    {}
func (*Label) sealed()     {}

// Reset copies the declared default into the current value.
// Gradient stops are copied so that later edits never alias the default.
func Reset(p Param) {
	switch p := p.(type) {
	case *Long:
		p.Value = p.Default
	case *Double:
		p.Value = p.Default
	case *Bool:
		p.Value = p.Default
	case *RGB:
		p.Value = p.Default
	case *ARGB:
		p.Value = p.Default
	case *Gradient:
		p.Value = color.NewGradient(p.Default.Stops...)
	case *AGradient:
		p.Value = color.NewGradient(p.Default.Stops...)
	case *Angle:
		p.Value = p.Default
	case *String:
		p.Value = p.Default
	case *Label:
	}
}

// Commit makes the current value the declared default. It is the inverse of
// Reset and is used to build defaults from wire-form text.
func Commit(p Param) {
	switch p := p.(type) {
	case *Long:
		p.Default = p.Value
	case *Double:
		p.Default = p.Value
	case *Bool:
		p.Default = p.Value
	case *RGB:
		p.Default = p.Value
	case *ARGB:
		p.Default = p.Value
	case *Gradient:
		p.Default = color.NewGradient(p.Value.Stops...)
	case *AGradient:
		p.Default = color.NewGradient(p.Value.Stops...)
	case *Angle:
		p.Default = p.Value
	case *String:
		p.Default = p.Value
	case *Label:
	}
}
