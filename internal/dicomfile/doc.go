// Package dicomfile provides a small, typed wrapper around a DICOM Part 10
// decoder.
//
// Key types:
//   - File: the parsed header of one DICOM file, queried by keyword
//   - Options: parse switches (pixel data is skipped by default)
//
// Primary entry points:
//   - Sniff: cheap preamble check used to reject non-DICOM files early
//   - Open: sniff then parse; every failure is returned as an error
//
// Lookup renders element values to text the same way for every caller so the
// exported table stays consistent across files and runs.
package dicomfile
