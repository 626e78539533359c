package report

import (
	"encoding/json"

	"magmoment/internal/crypto"
	"magmoment/internal/domain"
)

// numericContent is the part of a report covered by its fingerprint.
type numericContent struct {
	Material        string                    `json:"material"`
	Constants       domain.ConstantSet        `json:"constants"`
	CriticalDensity float64                   `json:"critical_density"`
	ScaledDensity   float64                   `json:"scaled_density"`
	Radius          float64                   `json:"radius"`
	BaseEnergy      float64                   `json:"base_energy"`
	Phases          []domain.EnergyPhase      `json:"phases"`
	Ionization      []domain.IonizationResult `json:"ionization"`
	Moment          domain.MomentResult       `json:"moment"`
}

// Fingerprint hashes the numeric content of r. RunID, GeneratedAt and any
// existing Fingerprint are ignored.
func Fingerprint(r domain.Report) (string, error) {
	b, err := json.Marshal(numericContent{
		Material:        r.Material,
		Constants:       r.Constants,
		CriticalDensity: r.CriticalDensity,
		ScaledDensity:   r.ScaledDensity,
		Radius:          r.Radius,
		BaseEnergy:      r.BaseEnergy,
		Phases:          r.Phases,
		Ionization:      r.Ionization,
		Moment:          r.Moment,
	})
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(b), nil
}
