package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/ckbfx/pkg/wire"
)

// Definition renders the definition string announced in the info block,
// without the leading "param " keyword.
func Definition(p Param) string {
	fields := []string{string(p.Kind()), wire.Quote(p.ParamName())}

	switch p := p.(type) {
	case *Long:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix),
			formatInt(p.Default), formatInt(p.Min), formatInt(p.Max))
	case *Double:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix),
			FormatDouble(p.Default), FormatDouble(p.Min), FormatDouble(p.Max))
	case *Bool:
		// The daemon expects an empty field between the text and the default.
		fields = append(fields, wire.Quote(p.Text), "", formatBool(p.Default))
	case *RGB:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix), p.Default.String())
	case *ARGB:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix), p.Default.String())
	case *Gradient:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix), wire.Quote(p.Default.String()))
	case *AGradient:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix), wire.Quote(p.Default.String()))
	case *Angle:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix), formatInt(p.Default))
	case *String:
		fields = append(fields, wire.Quote(p.Prefix), wire.Quote(p.Postfix), wire.Quote(p.Default))
	case *Label:
		fields = append(fields, wire.Quote(p.Text))
	default:
		panic(fmt.Sprintf("param: unknown parameter type %T", p))
	}

	return strings.Join(fields, " ")
}

// WireValue renders the current value the way the daemon sends it.
// Labels have no value and render as the empty string.
func WireValue(p Param) string {
	switch p := p.(type) {
	case *Long:
		return formatInt(p.Value)
	case *Double:
		return FormatDouble(p.Value)
	case *Bool:
		return formatBool(p.Value)
	case *RGB:
		return p.Value.String()
	case *ARGB:
		return p.Value.String()
	case *Gradient:
		return p.Value.String()
	case *AGradient:
		return p.Value.String()
	case *Angle:
		return formatInt(p.Value)
	case *String:
		return p.Value
	case *Label:
		return ""
	default:
		panic(fmt.Sprintf("param: unknown parameter type %T", p))
	}
}

// DefaultValue renders the declared default in wire form.
func DefaultValue(p Param) string {
	switch p := p.(type) {
	case *Long:
		return formatInt(p.Default)
	case *Double:
		return FormatDouble(p.Default)
	case *Bool:
		return formatBool(p.Default)
	case *RGB:
		return p.Default.String()
	case *ARGB:
		return p.Default.String()
	case *Gradient:
		return p.Default.String()
	case *AGradient:
		return p.Default.String()
	case *Angle:
		return formatInt(p.Default)
	case *String:
		return p.Default
	case *Label:
		return ""
	default:
		panic(fmt.Sprintf("param: unknown parameter type %T", p))
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatDouble renders a double the way the daemon expects it: always
// with a fractional part ("0.0", "-1.0", "2.5").
func FormatDouble(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
