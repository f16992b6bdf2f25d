package hierarchy

import "strings"

// Partition is one alternative decomposition of a subset into an ordered
// list of child subsets of the same dimension. Immutable after creation.
type Partition struct {
	parent  *Subset
	subsets []*Subset
}

// Parent returns the subset this partition decomposes.
func (p *Partition) Parent() *Subset { return p.parent }

// Subsets returns the children in declaration order. The returned slice must
// not be modified.
func (p *Partition) Subsets() []*Subset { return p.subsets }

// Size returns the number of children.
func (p *Partition) Size() int { return len(p.subsets) }

func (p *Partition) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, sub := range p.subsets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sub.name)
	}
	b.WriteString("}")
	return b.String()
}
