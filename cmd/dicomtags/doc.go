// Package main hosts the dicomtags CLI entrypoint.
//
// dicomtags walks a directory tree, reads a fixed catalog of DICOM header
// attributes from every decodable file, and writes them to
// original_DICOM_tags.csv inside the scanned directory. Configuration and
// logging are resolved here; traversal and table writing live in
// internal/tagtable.
package main
