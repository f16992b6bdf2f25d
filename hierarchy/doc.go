// Package hierarchy models a single dimension of a multidimensional dataset:
// its atomic elements, the admissible subsets of those elements, and the
// alternative partitions that decompose each non-leaf subset into children.
//
// A Set owns its Elements and Subsets and hands out dense, insertion-ordered
// ids for both. Subsets form a DAG rooted at the dimension's top subset, with
// leaves wrapping exactly one element. A subset may carry several partitions;
// the first one declared is canonical and drives leaf enumeration.
//
// Element membership of every subset is tracked with Roaring bitmaps, which
// makes the optional partition validator (disjointness and coverage checks)
// a couple of bitmap operations per partition.
package hierarchy
