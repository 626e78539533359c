// Package report runs the fixed derivation chain over a formula engine and
// renders the result as a text report.
//
// The chain is: critical density, scaled density, radius of action, base
// energy e0, energy phases 1..14, ionization checks for N, M, L and K, and
// the magnetic moment at phase index 6. Each step feeds the next; the first
// failure aborts the run and no partial report is returned.
package report
