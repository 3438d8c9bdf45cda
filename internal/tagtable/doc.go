// Package tagtable walks a directory tree and streams one CSV row per decoded
// imaging file into the tag table.
//
// Run owns the whole batch: it takes an exclusive lock on the output path,
// truncates the table, writes the header, visits every file depth-first, and
// closes the table on every exit path. Per-file problems never abort a run;
// only failures of the output destination do.
//
// Table is the append-only CSV writer. Rows are written as soon as they are
// produced, so only one row is alive at a time regardless of tree size.
package tagtable
