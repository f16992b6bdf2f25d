package mdc

import (
	"fmt"
	"strings"

	"github.com/lamarche-perrin/mdc/hierarchy"
)

// MultiElement is one cell of the product space: a d-tuple of elements, one
// per dimension, carrying a scalar value (default 0).
//
// Cells live in a dense grid owned by the MultiSet. The dense id encodes the
// element tuple in mixed radix with dimension 0 varying fastest.
type MultiElement struct {
	ms       *MultiSet
	id       int
	elements []*hierarchy.Element
	value    float64
}

// ID returns the dense cell id.
func (e *MultiElement) ID() int { return e.id }

// Elements returns the element tuple in dimension order. The returned slice
// must not be modified.
func (e *MultiElement) Elements() []*hierarchy.Element { return e.elements }

// Value returns the cell's scalar value.
func (e *MultiElement) Value() float64 { return e.value }

// SetValue assigns the cell's scalar value. Values outside [0, +inf) are
// accepted but the loss formula assumes non-negative measures.
func (e *MultiElement) SetValue(v float64) { e.value = v }

// String renders "(a1, b2, c1, 2)".
func (e *MultiElement) String() string {
	var b strings.Builder
	b.WriteString("(")
	for _, el := range e.elements {
		b.WriteString(el.Name())
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "%g)", e.value)
	return b.String()
}
