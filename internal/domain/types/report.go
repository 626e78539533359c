package types

import "time"

// Report is the structured outcome of one pipeline run.
type Report struct {
	RunID       string      `json:"run_id"`
	Material    string      `json:"material"`
	GeneratedAt time.Time   `json:"generated_at"`
	Constants   ConstantSet `json:"constants"`

	CriticalDensity float64            `json:"critical_density"`
	DetailRatio     float64            `json:"detail_ratio"`
	ScaledDensity   float64            `json:"scaled_density"`
	Radius          float64            `json:"radius"`
	BaseEnergy      float64            `json:"base_energy"`
	Phases          []EnergyPhase      `json:"phases"`
	Ionization      []IonizationResult `json:"ionization"`
	Moment          MomentResult       `json:"moment"`

	// Fingerprint covers the numeric content only, so two runs over the
	// same table share it regardless of RunID or GeneratedAt.
	Fingerprint string `json:"fingerprint"`
}
