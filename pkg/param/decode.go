package param

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/ckbfx/pkg/color"
)

// ErrInvalidValue is wrapped by every DecodeError.
var ErrInvalidValue = errors.New("invalid parameter value")

// DecodeError reports a wire value that could not be decoded for a parameter.
type DecodeError struct {
	Param string
	Kind  Kind
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("param %q (%s): cannot decode %q: %v", e.Param, e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("param %q (%s): cannot decode %q", e.Param, e.Kind, e.Value)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidValue}
	}
	return []error{ErrInvalidValue, e.Err}
}

// SetFromWire decodes a value token sent by the daemon and stores it as the
// parameter's current value. On error the current value is left untouched.
//
// Labels cannot be set; the call is a no-op.
func SetFromWire(p Param, token string) error {
	fail := func(err error) error {
		return &DecodeError{Param: p.ParamName(), Kind: p.Kind(), Value: token, Err: err}
	}

	switch p := p.(type) {
	case *Long:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return fail(err)
		}
		p.Value = v
	case *Double:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fail(err)
		}
		p.Value = v
	case *Bool:
		p.Value = token == "1"
	case *RGB:
		c, ok := color.ParseRGB(token)
		if !ok {
			return fail(nil)
		}
		p.Value = c
	case *ARGB:
		c, ok := color.ParseARGB(token)
		if !ok {
			return fail(nil)
		}
		p.Value = c
	case *Gradient:
		p.Value = color.ParseGradient(token)
	case *AGradient:
		p.Value = color.ParseAGradient(token)
	case *Angle:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return fail(err)
		}
		p.Value = v
	case *String:
		p.Value = token
	case *Label:
	default:
		panic(fmt.Sprintf("param: unknown parameter type %T", p))
	}
	return nil
}
