// Package extract turns one decoded imaging file into one output row.
//
// Extraction is best effort by policy: a file that cannot be decoded yields no
// row, and an attribute that cannot be read yields a sentinel. Nothing in this
// package returns an error to its caller.
package extract
