package hierarchy

// Kind selects the flavour of a subset at declaration time.
//
// Top-ness is orthogonal to leaf-ness: the top of a one-element dimension is
// both. Use Leaf(e).AsTop() for that case.
type Kind struct {
	top     bool
	element *Element
}

// Leaf declares a singleton subset wrapping exactly one element.
func Leaf(e *Element) Kind { return Kind{element: e} }

// Internal declares a subset that will be decomposed by partitions.
func Internal() Kind { return Kind{} }

// Top declares the dimension's root subset covering every element.
func Top() Kind { return Kind{top: true} }

// AsTop additionally marks the subset as the dimension's top.
func (k Kind) AsTop() Kind {
	k.top = true
	return k
}
