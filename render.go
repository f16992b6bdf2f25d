package mdc

import (
	"fmt"
	"io"
)

// Describe writes a human-readable listing of the multiset to w: every
// dimension with its elements, subsets and partitions, and, when recursive
// is set, every cell with its value and every block with its loss.
//
// The exact text format is not part of the contract; only the structural
// data it exposes is.
func (m *MultiSet) Describe(w io.Writer, recursive bool) error {
	for _, s := range m.sets {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}

	if !recursive {
		return nil
	}

	if m.gridBuilt {
		if _, err := fmt.Fprintf(w, "%s = {\n", m.name); err != nil {
			return err
		}
		for _, e := range m.multiElements {
			if _, err := fmt.Fprintf(w, "\t%s\n", e.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}

	if m.graphBuilt {
		for _, block := range m.multiSubsets {
			if _, err := fmt.Fprintf(w, "%s cells=%d sum=%g loss=%g\n",
				block.String(), block.multiElementNb, block.sumValue, block.loss); err != nil {
				return err
			}
		}
	}
	return nil
}
