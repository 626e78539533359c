package types

// EnergyPhase is one step of the energy progression. Energy and Multiplier
// are rounded to 4 decimals when the phase is built.
type EnergyPhase struct {
	Index      int     `json:"index"`
	Energy     float64 `json:"energy"`
	Multiplier float64 `json:"multiplier"`
}

// IonizationResult compares a shell's computed energy with its threshold.
// Energy is rounded to 4 decimals; Threshold is as stored in the table.
// Exceeded is decided on the unrounded energy.
type IonizationResult struct {
	Shell     Shell   `json:"shell"`
	Electrons int     `json:"electrons"`
	Energy    float64 `json:"energy"`
	Threshold float64 `json:"threshold"`
	Exceeded  bool    `json:"exceeded"`
}

// MomentResult carries the magnetic moment for one phase index together with
// the intermediates it was derived from. Nothing here is rounded.
type MomentResult struct {
	PhaseIndex  int     `json:"phase_index"`
	Coefficient float64 `json:"coefficient"`
	SixthRoot   float64 `json:"sixth_root"`
	Ratio       float64 `json:"ratio"`
	PerAtom     float64 `json:"per_atom"`
	Total       float64 `json:"total"`
}
