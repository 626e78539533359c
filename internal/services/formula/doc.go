// Package formula implements the closed-form formulas of the derivation
// chain: critical density, radius of action, characteristic energy, the
// energy-phase progression, shell ionization checks and magnetic moment.
//
// The formulas that depend only on their arguments are package functions.
// Engine binds a constant table for the ones that need it and implements
// domain.FormulaService. Nothing here logs or prints; failures are returned
// as *domain.FormulaError values that unwrap to the domain sentinels.
package formula
