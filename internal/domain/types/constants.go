package types

// ConstantSet holds the scalar material constants a run is computed from.
type ConstantSet struct {
	AtomicWeight           float64 `json:"atomic_weight" toml:"atomic_weight" yaml:"atomic_weight"`                                  // g/mol
	MolarVolume            float64 `json:"molar_volume" toml:"molar_volume" yaml:"molar_volume"`                                     // cm³/mol
	EnergyCoefficient      float64 `json:"energy_coefficient" toml:"energy_coefficient" yaml:"energy_coefficient"`                   // e = k / b
	MagneticMomentConstant float64 `json:"magnetic_moment_constant" toml:"magnetic_moment_constant" yaml:"magnetic_moment_constant"` // erg/Gauss per atom
	Avogadro               float64 `json:"avogadro" toml:"avogadro" yaml:"avogadro"`                                                 // mol⁻¹
	MassFraction           float64 `json:"mass_fraction" toml:"mass_fraction" yaml:"mass_fraction"`
	ReferenceScaling       float64 `json:"reference_scaling" toml:"reference_scaling" yaml:"reference_scaling"`
}
