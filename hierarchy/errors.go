package hierarchy

import "fmt"

// ErrDuplicateName indicates a name collision inside a Set.
type ErrDuplicateName struct {
	Set  string
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("duplicate name %q in set %q", e.Name, e.Set)
}

// ErrUnknownName indicates a lookup for a name that was never declared.
type ErrUnknownName struct {
	Set  string
	Name string
}

func (e *ErrUnknownName) Error() string {
	return fmt.Sprintf("unknown name %q in set %q", e.Name, e.Set)
}

// ErrMultipleTop indicates a second top subset declaration for a Set.
type ErrMultipleTop struct {
	Set      string
	Existing string
	Name     string
}

func (e *ErrMultipleTop) Error() string {
	return fmt.Sprintf("set %q already has top subset %q, cannot mark %q", e.Set, e.Existing, e.Name)
}

// ErrEmptyPartition indicates a partition declared with no children.
type ErrEmptyPartition struct {
	Subset string
}

func (e *ErrEmptyPartition) Error() string {
	return fmt.Sprintf("empty partition on subset %q", e.Subset)
}

// ErrNoPartition indicates an internal subset with zero partitions,
// detected while expanding its leaf elements.
type ErrNoPartition struct {
	Set    string
	Subset string
}

func (e *ErrNoPartition) Error() string {
	return fmt.Sprintf("no partition on internal subset %q of set %q", e.Subset, e.Set)
}

// ErrLeafPartition indicates an attempt to partition a leaf subset.
type ErrLeafPartition struct {
	Subset string
}

func (e *ErrLeafPartition) Error() string {
	return fmt.Sprintf("leaf subset %q cannot receive a partition", e.Subset)
}

// ErrInvalidPartition is reported by the optional validator when the children
// of a partition overlap or do not cover the parent.
type ErrInvalidPartition struct {
	Subset string
	Index  int
	Reason string
}

func (e *ErrInvalidPartition) Error() string {
	return fmt.Sprintf("partition %d of subset %q is not a partition: %s", e.Index, e.Subset, e.Reason)
}
