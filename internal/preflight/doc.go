// Package preflight verifies the scan root before a run touches the output
// table.
//
// Checks return Result values rather than errors so the CLI can report every
// failing check at once; FirstFailure converts them into a single error.
package preflight
