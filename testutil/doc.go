// Package testutil provides shared fixtures and helpers for tests: the
// three-dimensional sample multiset used throughout the test suite and a
// small deterministic RNG for property-style tests.
package testutil
