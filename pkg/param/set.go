package param

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateParam is returned when two parameters share a name.
	ErrDuplicateParam = errors.New("duplicate parameter name")
	// ErrEmptyName is returned for a parameter without a name.
	ErrEmptyName = errors.New("parameter name cannot be empty")
)

// Set is an ordered collection of parameters addressable by name.
// Declaration order is preserved for the info block.
type Set struct {
	order  []Param
	byName map[string]Param
}

// NewSet builds a set from params, resetting each one to its default value.
func NewSet(params ...Param) (*Set, error) {
	s := &Set{byName: make(map[string]Param, len(params))}
	for _, p := range params {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNewSet is like NewSet but panics on error.
func MustNewSet(params ...Param) *Set {
	s, err := NewSet(params...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add appends p and resets it to its default value.
func (s *Set) Add(p Param) error {
	if s.byName == nil {
		s.byName = make(map[string]Param)
	}
	name := p.ParamName()
	if name == "" {
		return fmt.Errorf("%w (%s)", ErrEmptyName, p.Kind())
	}
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateParam, name)
	}
	Reset(p)
	s.order = append(s.order, p)
	s.byName[name] = p
	return nil
}

// Get looks a parameter up by name.
func (s *Set) Get(name string) (Param, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.byName[name]
	return p, ok
}

// All returns the parameters in declaration order.
func (s *Set) All() []Param {
	if s == nil {
		return nil
	}
	return append([]Param(nil), s.order...)
}

// Len returns the number of parameters.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Values renders the current wire value of every parameter, labels excluded.
func (s *Set) Values() map[string]string {
	values := make(map[string]string, s.Len())
	for _, p := range s.All() {
		if p.Kind() == KindLabel {
			continue
		}
		values[p.ParamName()] = WireValue(p)
	}
	return values
}
