// Package cursorkit verifies that types structurally satisfy cursor
// capabilities: the progression from single-pass readable cursors through
// forward, bidirectional, and random-access cursors.
//
// A capability is a named set of requirements (operations with exact
// signatures plus structural properties) and may extend other capabilities.
// Verification flattens the extension chain root-first and evaluates each
// requirement against the candidate's reflected method set, yielding either
// a satisfied result or the first unmet requirement. The check is pure:
// nothing is mutated and repeated verification of the same pair always
// agrees.
//
// The Checker in this package is the high-level entry point; the capability,
// verify, registry, report, and parser packages expose the underlying
// pieces for tooling. For build-time gating, the cursors package provides
// generic interface bounds that make the compiler reject non-conforming
// types.
package cursorkit
