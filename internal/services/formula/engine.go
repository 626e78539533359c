package formula

import "magmoment/internal/domain"

// Engine evaluates formulas against one constant table.
type Engine struct {
	table domain.Table
}

// New returns an engine bound to table.
func New(table domain.Table) *Engine { return &Engine{table: table} }

// Table returns the bound constant table.
func (e *Engine) Table() domain.Table { return e.table }

// CriticalDensity returns atomicWeight / molarVolume.
func (e *Engine) CriticalDensity(atomicWeight, molarVolume float64) (float64, error) {
	return CriticalDensity(atomicWeight, molarVolume)
}

// RadiusOfAction returns 0.5 * (5 * molarVolume)^(1/3).
func (e *Engine) RadiusOfAction(molarVolume float64) (float64, error) {
	return RadiusOfAction(molarVolume)
}

// EnergyFromRadius returns coefficient / radius.
func (e *Engine) EnergyFromRadius(radius, coefficient float64) (float64, error) {
	return EnergyFromRadius(radius, coefficient)
}

// GenerateEnergyPhases returns phases 1..maxPhase starting from e0.
func (e *Engine) GenerateEnergyPhases(e0 float64, maxPhase int) ([]domain.EnergyPhase, error) {
	return GenerateEnergyPhases(e0, maxPhase)
}

// CheckIonization checks shell against the bound table's thresholds.
func (e *Engine) CheckIonization(e0 float64, shell string, electrons int) (domain.IonizationResult, error) {
	return CheckIonization(e.table, e0, shell, electrons)
}

// MagneticMoment computes the moment at phaseIndex of the bound table.
func (e *Engine) MagneticMoment(phaseIndex int) (domain.MomentResult, error) {
	return MagneticMoment(e.table, phaseIndex)
}

// Compile-time assertion that Engine implements domain.FormulaService.
var _ domain.FormulaService = (*Engine)(nil)
