package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"magmoment/internal/domain"
)

// ProgramName heads every rendered report.
const ProgramName = "Magnetic Moment Calculation Script"

const (
	banner    = "==============================================="
	tableRule = "---------------------------------------------"
)

// Render writes the full text report for r to w.
func Render(w io.Writer, r domain.Report) error {
	var b strings.Builder

	writeHeader(&b, r)

	fmt.Fprintf(&b, "Step 1: Critical density s = a / c = %.4f\n", r.CriticalDensity)
	fmt.Fprintf(&b, "Step 2: s2 = s * %s = %.4f\n", decimal(r.DetailRatio), r.ScaledDensity)
	fmt.Fprintf(&b, "Radius of action b = 0.5 * (5 * c)^(1/3) = %.4f\n", r.Radius)
	fmt.Fprintf(&b, "Energy corresponding to radius of action: e0 = %.4f\n", r.BaseEnergy)

	writePhases(&b, r.Phases)
	writeIonization(&b, r.Ionization)
	writeMomentDetails(&b, r.Moment, r.Constants)
	writeMomentSummary(&b, r.Moment)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPhases writes the energy phase table.
func RenderPhases(w io.Writer, phases []domain.EnergyPhase) error {
	var b strings.Builder
	writePhases(&b, phases)
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderIonization writes one block per ionization result.
func RenderIonization(w io.Writer, results ...domain.IonizationResult) error {
	var b strings.Builder
	writeIonization(&b, results)
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMoment writes the diagnostic block and the moment summary.
func RenderMoment(w io.Writer, m domain.MomentResult, c domain.ConstantSet) error {
	var b strings.Builder
	writeMomentDetails(&b, m, c)
	writeMomentSummary(&b, m)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHeader(b *strings.Builder, r domain.Report) {
	b.WriteString(banner + "\n")
	b.WriteString(" " + ProgramName + "\n")
	fmt.Fprintf(b, " Date: %s Time: %s\n",
		r.GeneratedAt.Format("2006-01-02"), r.GeneratedAt.Format("15:04:05"))
	b.WriteString(banner + "\n\n")
}

func writePhases(b *strings.Builder, phases []domain.EnergyPhase) {
	b.WriteString("\nSummary of Energy Phases (i=1 to i=N):\n")
	fmt.Fprintf(b, "%8s | %12s | %20s\n", "Phase i", "Energy E_i", "Multiplier to E1")
	b.WriteString(tableRule + "\n")
	for _, p := range phases {
		fmt.Fprintf(b, "%8d | %12.4f | %20.4f\n", p.Index, p.Energy, p.Multiplier)
	}
	b.WriteString(tableRule + "\n\n")
}

func writeIonization(b *strings.Builder, results []domain.IonizationResult) {
	for _, res := range results {
		fmt.Fprintf(b, "Ionization check for shell %s (electrons=%d):\n", res.Shell, res.Electrons)
		fmt.Fprintf(b, " Computed energy: %s\n", decimal(res.Energy))
		fmt.Fprintf(b, " Threshold: %s\n", decimal(res.Threshold))
		fmt.Fprintf(b, " Exceeded: %s\n\n", boolean(res.Exceeded))
	}
}

func writeMomentDetails(b *strings.Builder, m domain.MomentResult, c domain.ConstantSet) {
	b.WriteString("=== Magnetic Moment Calculation Details ===\n")
	fmt.Fprintf(b, "i_phase index: %d\n", m.PhaseIndex)
	fmt.Fprintf(b, "KI value (ki): %s\n", decimal(m.Coefficient))
	fmt.Fprintf(b, "IRON_MOLAR_VOLUME^(1/6): %.6e\n", m.SixthRoot)
	fmt.Fprintf(b, "Ratio (sixth_root_vm / IRON_ATOMIC_WEIGHT): %.6e\n", m.Ratio)
	fmt.Fprintf(b, "MAGNETIC_MOMENT_CONSTANT: %.6e\n", c.MagneticMomentConstant)
	fmt.Fprintf(b, "mu_1 = MAGNETIC_MOMENT_CONSTANT * ratio * ki = %.6e\n", m.PerAtom)
	fmt.Fprintf(b, "AVOGADRO_NUMBER: %.6e\n", c.Avogadro)
	fmt.Fprintf(b, "IRON_MASS_FRACTION: %.6e\n", c.MassFraction)
	fmt.Fprintf(b, "REFERENCE_SCALING_CONSTANT: %.6e\n", c.ReferenceScaling)
	fmt.Fprintf(b, "IRON_ATOMIC_WEIGHT: %.6e\n", c.AtomicWeight)
	fmt.Fprintf(b,
		"mu_total = (AVOGADRO_NUMBER * mu_1 * IRON_MASS_FRACTION * REFERENCE_SCALING_CONSTANT) / IRON_ATOMIC_WEIGHT = %.6e\n",
		m.Total)
}

func writeMomentSummary(b *strings.Builder, m domain.MomentResult) {
	fmt.Fprintf(b, "Magnetic moment per atom (phase %d): %.3e (erg/Gauss)\n", m.PhaseIndex, m.PerAtom)
	fmt.Fprintf(b, "Magnetic moment total (phase %d): %.3e (erg/Gauss)\n", m.PhaseIndex, m.Total)
}

// boolean spells a flag the way the report has always printed it.
func boolean(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// decimal formats x as the shortest decimal that reads back to x, always
// with a fractional part (16.6701, 2.0). Very large or very small magnitudes
// use exponent form.
func decimal(x float64) string {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return strconv.FormatFloat(x, 'g', -1, 64)
	case x != 0 && (math.Abs(x) >= 1e16 || math.Abs(x) < 1e-4):
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
