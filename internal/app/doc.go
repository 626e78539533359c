// Package app wires application dependencies for the CLI.
//
// It builds the constant table, formula engine, report pipeline and stores
// from Config, exposing them via the Wire struct for commands to use.
package app
