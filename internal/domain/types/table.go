package types

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Table is an immutable constant table: the scalar constants, the ordered
// coefficient sequence (indexed by phase) and the per-shell ionization
// thresholds. Accessors hand out copies; a different material means a
// different Table, never a patched one.
type Table struct {
	material     string
	constants    ConstantSet
	coefficients []float64
	thresholds   map[Shell]float64
}

// NewTable copies its arguments into a new Table, upper-casing shell keys.
// It does not validate; call Validate for tables that come from outside the
// binary.
func NewTable(
	material string,
	constants ConstantSet,
	coefficients []float64,
	thresholds map[Shell]float64,
) Table {
	normalised := make(map[Shell]float64, len(thresholds))
	for s, v := range thresholds {
		normalised[Shell(strings.ToUpper(string(s)))] = v
	}
	return Table{
		material:     material,
		constants:    constants,
		coefficients: slices.Clone(coefficients),
		thresholds:   normalised,
	}
}

// Material names the material the table describes.
func (t Table) Material() string { return t.material }

// Constants returns the scalar constants.
func (t Table) Constants() ConstantSet { return t.constants }

// Len returns the number of coefficients.
func (t Table) Len() int { return len(t.coefficients) }

// Coefficient returns the coefficient at index i; ok is false when i is out
// of range.
func (t Table) Coefficient(i int) (float64, bool) {
	if i < 0 || i >= len(t.coefficients) {
		return 0, false
	}
	return t.coefficients[i], true
}

// Coefficients returns a copy of the coefficient sequence.
func (t Table) Coefficients() []float64 { return slices.Clone(t.coefficients) }

// Threshold looks up the ionization threshold for a shell label,
// case-insensitively.
func (t Table) Threshold(label string) (float64, bool) {
	s, known := ParseShell(label)
	if !known {
		return 0, false
	}
	v, ok := t.thresholds[s]
	return v, ok
}

// Thresholds returns a copy of the threshold map.
func (t Table) Thresholds() map[Shell]float64 { return maps.Clone(t.thresholds) }

// Validate checks the physical preconditions every formula relies on.
// Failures unwrap to ErrDomain.
func (t Table) Validate() error {
	c := t.constants
	scalars := []struct {
		name string
		v    float64
	}{
		{"atomic_weight", c.AtomicWeight},
		{"molar_volume", c.MolarVolume},
		{"energy_coefficient", c.EnergyCoefficient},
		{"magnetic_moment_constant", c.MagneticMomentConstant},
		{"avogadro", c.Avogadro},
		{"mass_fraction", c.MassFraction},
		{"reference_scaling", c.ReferenceScaling},
	}
	for _, s := range scalars {
		if !(s.v > 0) || math.IsInf(s.v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrDomain, s.name, s.v)
		}
	}
	if len(t.coefficients) == 0 {
		return fmt.Errorf("%w: coefficient table is empty", ErrDomain)
	}
	for i, k := range t.coefficients {
		if !(k > 0 && k <= 1) {
			return fmt.Errorf("%w: coefficient[%d] must be in (0,1], got %v", ErrDomain, i, k)
		}
	}
	for s, v := range t.thresholds {
		if _, known := ParseShell(string(s)); !known {
			return fmt.Errorf("%w: %s", ErrUnknownShell, s)
		}
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: threshold for shell %s must be positive and finite, got %v", ErrDomain, s, v)
		}
	}
	return nil
}

// Monotonic reports whether the coefficients never increase with phase.
// Tables are expected to be monotonic but are not required to be.
func (t Table) Monotonic() bool {
	for i := 1; i < len(t.coefficients); i++ {
		if t.coefficients[i] > t.coefficients[i-1] {
			return false
		}
	}
	return true
}
