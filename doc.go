// Package mdc computes optimal lossy compressions of multidimensional
// datasets by selecting rectangular partitions of a product space.
//
// Each dimension is described by a hierarchy of admissible subsets with
// alternative partitions (package hierarchy). The cross-product of those
// hierarchies defines a DAG of rectangular blocks; mdc selects a set of
// blocks that tiles the full product space exactly once and minimises the
// objective size + lambda*loss, where loss is an entropy-style measure of
// the information destroyed by merging a block's cells into their mean.
//
// # Quick start
//
//	ms := mdc.NewMultiSet("ABC")
//	a, _ := ms.AddSet("A")
//	a1, _ := a.AddElement("a1")
//	// ... declare elements, subsets and partitions per dimension ...
//
//	_ = ms.BuildMultiElements()
//	_ = ms.SetValue([]string{"a3", "b2", "c1"}, 2)
//	_ = ms.BuildMultiSubsets() // also runs the loss pass
//
//	opt, _ := ms.OptimalPartition(0.5)
//	fmt.Println(opt.Size(), opt.Loss(), opt.Cost())
//
// Loss is computed once per data load; the dynamic program is re-run per
// lambda, so sweeping many trade-off points is cheap (see Sweep).
//
// Datasets can be loaded from whitespace-tokenized hierarchy and value
// files through package dataset, reading from local disk, memory, S3 or
// MinIO via package blobstore. Solved partitions can be persisted as
// compressed, self-describing snapshots via package snapshot.
package mdc
