package formula

import (
	"math"

	"magmoment/internal/domain"
)

// cubeRoot2 is the ratio between consecutive energy phases.
var cubeRoot2 = math.Pow(2, 1.0/3)

// CriticalDensity returns s = a / c.
func CriticalDensity(atomicWeight, molarVolume float64) (float64, error) {
	if molarVolume == 0 {
		return 0, domain.NewFormulaError("critical_density", domain.ErrDivision, "molar_volume=%v", molarVolume)
	}
	return atomicWeight / molarVolume, nil
}

// RadiusOfAction returns b = 0.5 * (5c)^(1/3). Negative volumes have no
// principal real root under this convention and are rejected.
func RadiusOfAction(molarVolume float64) (float64, error) {
	if molarVolume < 0 || math.IsNaN(molarVolume) {
		return 0, domain.NewFormulaError("radius_of_action", domain.ErrDomain, "molar_volume=%v", molarVolume)
	}
	return 0.5 * math.Pow(5*molarVolume, 1.0/3), nil
}

// EnergyFromRadius returns e = k / b.
func EnergyFromRadius(radius, coefficient float64) (float64, error) {
	if radius == 0 {
		return 0, domain.NewFormulaError("energy_from_radius", domain.ErrDivision, "radius=%v", radius)
	}
	return coefficient / radius, nil
}

// GenerateEnergyPhases returns phases 1..maxPhase of the progression
// E_i = e0 * (2^(1/3))^i. Multipliers are relative to E_1 and computed from
// the unrounded energies; phase 1's multiplier is exactly 1. A zero e0
// leaves nothing to divide by once a second phase is requested.
func GenerateEnergyPhases(e0 float64, maxPhase int) ([]domain.EnergyPhase, error) {
	if maxPhase < 1 {
		return nil, domain.NewFormulaError("generate_energy_phases", domain.ErrDomain, "max_phase=%d", maxPhase)
	}
	if math.IsNaN(e0) || math.IsInf(e0, 0) {
		return nil, domain.NewFormulaError("generate_energy_phases", domain.ErrDomain, "e0=%v", e0)
	}

	e1 := e0 * cubeRoot2
	if e1 == 0 && maxPhase > 1 {
		return nil, domain.NewFormulaError("generate_energy_phases", domain.ErrDivision, "e1=%v", e1)
	}
	phases := make([]domain.EnergyPhase, 0, maxPhase)
	phases = append(phases, domain.EnergyPhase{Index: 1, Energy: Round4(e1), Multiplier: 1.0})

	for i := 2; i <= maxPhase; i++ {
		ei := e0 * math.Pow(cubeRoot2, float64(i))
		phases = append(phases, domain.EnergyPhase{
			Index:      i,
			Energy:     Round4(ei),
			Multiplier: Round4(ei / e1),
		})
	}
	return phases, nil
}

// CheckIonization compares e0 * electrons against the threshold for shell.
// The comparison is strict and uses the unrounded energy.
func CheckIonization(
	table domain.Table,
	e0 float64,
	shell string,
	electrons int,
) (domain.IonizationResult, error) {
	if electrons < 0 {
		return domain.IonizationResult{}, domain.NewFormulaError(
			"check_ionization", domain.ErrDomain, "electrons_in_shell=%d", electrons)
	}
	threshold, ok := table.Threshold(shell)
	if !ok {
		return domain.IonizationResult{}, domain.NewFormulaError(
			"check_ionization", domain.ErrUnknownShell, "shell=%q", shell)
	}
	label, _ := domain.ParseShell(shell)

	energy := e0 * float64(electrons)
	return domain.IonizationResult{
		Shell:     label,
		Electrons: electrons,
		Energy:    Round4(energy),
		Threshold: threshold,
		Exceeded:  energy > threshold,
	}, nil
}

// MagneticMoment computes the per-atom and total magnetic moment for the
// coefficient at phaseIndex:
//
//	mu1    = M * (c^(1/6) / a) * ki
//	mu_tot = NA * mu1 * f * R / a
func MagneticMoment(table domain.Table, phaseIndex int) (domain.MomentResult, error) {
	ki, ok := table.Coefficient(phaseIndex)
	if !ok {
		return domain.MomentResult{}, domain.NewFormulaError(
			"magnetic_moment", domain.ErrRange,
			"phase_index=%d (valid 0..%d)", phaseIndex, table.Len()-1)
	}
	c := table.Constants()

	sixthRoot := math.Pow(c.MolarVolume, 1.0/6)
	ratio := sixthRoot / c.AtomicWeight
	perAtom := c.MagneticMomentConstant * ratio * ki
	total := (c.Avogadro * perAtom * c.MassFraction * c.ReferenceScaling) / c.AtomicWeight

	return domain.MomentResult{
		PhaseIndex:  phaseIndex,
		Coefficient: ki,
		SixthRoot:   sixthRoot,
		Ratio:       ratio,
		PerAtom:     perAtom,
		Total:       total,
	}, nil
}
