// Package dataset loads dimension hierarchies and cell values from
// whitespace-tokenized text files into a mdc.MultiSet.
//
// Files are read through package blobstore, so datasets can live on local
// disk, in memory, on S3 or on any S3-compatible endpoint. Malformed lines
// (duplicate elements, unknown subset references, bad value tuples) are
// logged as warnings and skipped; hard construction errors abort the load.
package dataset
