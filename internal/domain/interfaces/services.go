package interfaces

import domaintypes "magmoment/internal/domain/types"

// FormulaService evaluates the closed-form formulas against a bound
// constant table. Implementations are pure: no output, no logging.
type FormulaService interface {
	Table() domaintypes.Table

	CriticalDensity(atomicWeight, molarVolume float64) (float64, error)
	RadiusOfAction(molarVolume float64) (float64, error)
	EnergyFromRadius(radius, coefficient float64) (float64, error)
	GenerateEnergyPhases(e0 float64, maxPhase int) ([]domaintypes.EnergyPhase, error)
	CheckIonization(
		e0 float64,
		shell string,
		electrons int,
	) (domaintypes.IonizationResult, error)
	MagneticMoment(phaseIndex int) (domaintypes.MomentResult, error)
}

// ReportService runs the fixed derivation chain.
type ReportService interface {
	// BaseEnergy derives e0 from the bound table (radius of action, then
	// energy from radius).
	BaseEnergy() (float64, error)
	Run() (domaintypes.Report, error)
}
