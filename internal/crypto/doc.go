// Package crypto exposes the hashing primitive used to fingerprint reports.
//
// Fingerprints are short, stable identifiers for display and logging: two
// reports with the same numeric content always share one.
package crypto
