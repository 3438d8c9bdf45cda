// Package catalog holds the fixed, ordered list of DICOM attribute keywords
// exported to the tag table.
//
// The order defines output column order and never changes at runtime. Callers
// receive copies, so the catalog cannot be mutated after process start.
package catalog
