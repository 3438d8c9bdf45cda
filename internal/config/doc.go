// Package config loads, normalizes, and validates dicomtags configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. A missing file is not an error:
// defaults reproduce the documented command-line behaviour exactly.
//
// The attribute catalog is deliberately absent from this package; it is fixed
// at build time in internal/catalog.
package config
