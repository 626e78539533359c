package domain

import (
	interfaces "magmoment/internal/domain/interfaces"
	types "magmoment/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Shell            = types.Shell
	ConstantSet      = types.ConstantSet
	Table            = types.Table
	EnergyPhase      = types.EnergyPhase
	IonizationResult = types.IonizationResult
	MomentResult     = types.MomentResult
	Report           = types.Report
	FormulaError     = types.FormulaError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	FormulaService = interfaces.FormulaService
	ReportService  = interfaces.ReportService
	TableStore     = interfaces.TableStore
	ReportStore    = interfaces.ReportStore
)

// Shell labels.
const (
	ShellK = types.ShellK
	ShellL = types.ShellL
	ShellM = types.ShellM
	ShellN = types.ShellN
)

// Sentinel errors; see the types package for their meaning.
var (
	ErrDomain       = types.ErrDomain
	ErrDivision     = types.ErrDivision
	ErrRange        = types.ErrRange
	ErrUnknownShell = types.ErrUnknownShell
)

// Function re-exports.
var (
	NewTable        = types.NewTable
	ParseShell      = types.ParseShell
	Shells          = types.Shells
	NewFormulaError = types.NewFormulaError
)
