// Package constants holds the compiled-in reference constant table: iron,
// after Savić, P. and Kašanin, R. (1965), The Behaviour of the Materials
// under High Pressures, Serbian Academy of Sciences and Arts, Monographs IV.
package constants

import "magmoment/internal/domain"

// Physical constants.
const (
	Avogadro = 6.02214076e23 // mol⁻¹, exact since the 2019 SI redefinition
)

// Iron (Fe) material constants.
const (
	IronAtomicWeight       = 55.845     // g/mol
	IronMolarVolume        = 7.09       // cm³/mol
	EnergyCoefficient      = 14.4       // e = 14.4 / b
	MagneticMomentConstant = 14.184e-24 // erg/Gauss per atom
	IronMassFraction       = 0.824      // iron mass fraction of the Hoba meteorite
	ReferenceScaling       = 1.976e13   // mass constant from the 1965 reference
)

// ironCoefficients are the experimental ki values, one per phase index.
var ironCoefficients = []float64{
	0.9999, 0.8657, 0.7929, 0.6871, 0.6293, 0.5453, 0.4999,
	0.4328, 0.3964, 0.3435, 0.3147, 0.2727, 0.2498, 0.2164,
}

var ironThresholds = map[domain.Shell]float64{
	domain.ShellN: 16.6701,
	domain.ShellM: 48.1462,
	domain.ShellL: 27.9314,
	domain.ShellK: 16.6701,
}

// Iron returns the reference table. Each call returns an independent copy.
func Iron() domain.Table {
	return domain.NewTable("Fe", domain.ConstantSet{
		AtomicWeight:           IronAtomicWeight,
		MolarVolume:            IronMolarVolume,
		EnergyCoefficient:      EnergyCoefficient,
		MagneticMomentConstant: MagneticMomentConstant,
		Avogadro:               Avogadro,
		MassFraction:           IronMassFraction,
		ReferenceScaling:       ReferenceScaling,
	}, ironCoefficients, ironThresholds)
}
