// Package commands defines the magmoment CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)         Run the full derivation chain and print the report
//   - phases         Print the energy phase table
//   - ionize         Check one shell against its ionization threshold
//   - moment         Print the magnetic moment for one phase index
//   - constants      Print or export the active constant table
//   - fingerprint    Print the fingerprint of the report's numeric content
//
// # Implementation
//
// The root command builds a zap logger and the dependency graph (constant
// table, formula engine, report pipeline, stores) before any subcommand
// runs. Reports go to stdout; logs go to stderr.
package commands
