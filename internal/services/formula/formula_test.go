package formula_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magmoment/internal/constants"
	"magmoment/internal/domain"
	"magmoment/internal/services/formula"
)

func TestCriticalDensity(t *testing.T) {
	s, err := formula.CriticalDensity(55.845, 7.09)
	require.NoError(t, err)
	assert.Equal(t, 7.8766, formula.Round4(s))
}

func TestCriticalDensity_ZeroVolume(t *testing.T) {
	_, err := formula.CriticalDensity(55.845, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDivision))

	var fe *domain.FormulaError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "critical_density", fe.Op)
	assert.Equal(t, "molar_volume=0", fe.Input)
}

func TestRadiusOfAction(t *testing.T) {
	b, err := formula.RadiusOfAction(7.09)
	require.NoError(t, err)
	assert.Equal(t, 1.6425, formula.Round4(b))
}

func TestRadiusOfAction_PositiveForPositiveVolume(t *testing.T) {
	for _, c := range []float64{1e-9, 0.5, 1, 7.09, 42, 1e6} {
		b, err := formula.RadiusOfAction(c)
		require.NoError(t, err)
		assert.Greater(t, b, 0.0, "molar volume %v", c)
	}
}

func TestRadiusOfAction_Zero(t *testing.T) {
	b, err := formula.RadiusOfAction(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b)
}

func TestRadiusOfAction_NegativeRejected(t *testing.T) {
	_, err := formula.RadiusOfAction(-1)
	assert.True(t, errors.Is(err, domain.ErrDomain))
}

func TestEnergyFromRadius(t *testing.T) {
	b, err := formula.RadiusOfAction(7.09)
	require.NoError(t, err)
	e0, err := formula.EnergyFromRadius(b, 14.4)
	require.NoError(t, err)
	assert.Equal(t, 8.7671, formula.Round4(e0))
}

func TestEnergyFromRadius_ZeroRadius(t *testing.T) {
	_, err := formula.EnergyFromRadius(0, 14.4)
	assert.True(t, errors.Is(err, domain.ErrDivision))
}

func referenceE0(t *testing.T) float64 {
	t.Helper()
	b, err := formula.RadiusOfAction(constants.IronMolarVolume)
	require.NoError(t, err)
	e0, err := formula.EnergyFromRadius(b, constants.EnergyCoefficient)
	require.NoError(t, err)
	return e0
}

func TestGenerateEnergyPhases_Reference(t *testing.T) {
	phases, err := formula.GenerateEnergyPhases(referenceE0(t), 14)
	require.NoError(t, err)
	require.Len(t, phases, 14)

	want := []domain.EnergyPhase{
		{Index: 1, Energy: 11.0458, Multiplier: 1.0},
		{Index: 2, Energy: 13.9168, Multiplier: 1.2599},
		{Index: 3, Energy: 17.5341, Multiplier: 1.5874},
		{Index: 4, Energy: 22.0916, Multiplier: 2.0},
		{Index: 5, Energy: 27.8337, Multiplier: 2.5198},
		{Index: 6, Energy: 35.0682, Multiplier: 3.1748},
		{Index: 7, Energy: 44.1832, Multiplier: 4.0},
		{Index: 8, Energy: 55.6673, Multiplier: 5.0397},
		{Index: 9, Energy: 70.1364, Multiplier: 6.3496},
		{Index: 10, Energy: 88.3664, Multiplier: 8.0},
		{Index: 11, Energy: 111.3347, Multiplier: 10.0794},
		{Index: 12, Energy: 140.2729, Multiplier: 12.6992},
		{Index: 13, Energy: 176.7328, Multiplier: 16.0},
		{Index: 14, Energy: 222.6693, Multiplier: 20.1587},
	}
	if diff := cmp.Diff(want, phases); diff != "" {
		t.Fatalf("phases mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateEnergyPhases_FirstMultiplierExact(t *testing.T) {
	for _, e0 := range []float64{1e-12, 3.3, 8.76705520488634, 1e9} {
		phases, err := formula.GenerateEnergyPhases(e0, 14)
		require.NoError(t, err)
		assert.Equal(t, 1.0, phases[0].Multiplier)
		assert.Equal(t, formula.Round4(e0*math.Pow(2, 1.0/3)), phases[0].Energy)
	}
}

func TestGenerateEnergyPhases_MultiplierProgression(t *testing.T) {
	phases, err := formula.GenerateEnergyPhases(5.5, 14)
	require.NoError(t, err)
	for i := 1; i < len(phases); i++ {
		assert.Equal(t, i+1, phases[i].Index)
		assert.InDelta(t, math.Pow(2, float64(i)/3), phases[i].Multiplier, 1e-4, "phase %d", i+1)
	}
}

func TestGenerateEnergyPhases_SinglePhase(t *testing.T) {
	phases, err := formula.GenerateEnergyPhases(2, 1)
	require.NoError(t, err)
	require.Len(t, phases, 1)
	assert.Equal(t, 1, phases[0].Index)
}

func TestGenerateEnergyPhases_MaxBelowOne(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := formula.GenerateEnergyPhases(1, n)
		assert.True(t, errors.Is(err, domain.ErrDomain), "max_phase %d", n)
	}
}

func TestGenerateEnergyPhases_ZeroBaseEnergy(t *testing.T) {
	_, err := formula.GenerateEnergyPhases(0, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDivision), "got %v", err)

	phases, err := formula.GenerateEnergyPhases(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.EnergyPhase{{Index: 1, Energy: 0, Multiplier: 1}}, phases)
}

func TestGenerateEnergyPhases_NonFiniteBaseEnergy(t *testing.T) {
	for _, e0 := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := formula.GenerateEnergyPhases(e0, 4)
		assert.True(t, errors.Is(err, domain.ErrDomain), "e0 %v: got %v", e0, err)
	}
}

func TestGenerateEnergyPhases_MultipliersAlwaysFinite(t *testing.T) {
	for _, e0 := range []float64{-2.5, 1e-12, 8.76705520488634, 1e9} {
		phases, err := formula.GenerateEnergyPhases(e0, 14)
		require.NoError(t, err)
		for i, p := range phases {
			require.False(t, math.IsNaN(p.Multiplier) || math.IsInf(p.Multiplier, 0), "e0 %v phase %d", e0, p.Index)
			assert.InDelta(t, math.Pow(2, float64(i)/3), p.Multiplier, 1e-4, "e0 %v phase %d", e0, p.Index)
		}
	}
}

func TestGenerateEnergyPhases_Deterministic(t *testing.T) {
	e0 := referenceE0(t)
	a, err := formula.GenerateEnergyPhases(e0, 14)
	require.NoError(t, err)
	b, err := formula.GenerateEnergyPhases(e0, 14)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCheckIonization_Reference(t *testing.T) {
	e0 := referenceE0(t)
	table := constants.Iron()

	tests := []struct {
		shell     string
		electrons int
		energy    float64
		threshold float64
		exceeded  bool
	}{
		{"N", 2, 17.5341, 16.6701, true},
		{"M", 14, 122.7388, 48.1462, true},
		{"L", 8, 70.1364, 27.9314, true},
		{"K", 2, 17.5341, 16.6701, true},
		{"K", 1, 8.7671, 16.6701, false},
		{"M", 0, 0, 48.1462, false},
	}
	for _, tt := range tests {
		got, err := formula.CheckIonization(table, e0, tt.shell, tt.electrons)
		require.NoError(t, err)
		assert.Equal(t, domain.Shell(tt.shell), got.Shell)
		assert.Equal(t, tt.electrons, got.Electrons)
		assert.Equal(t, tt.energy, got.Energy, "%s/%d", tt.shell, tt.electrons)
		assert.Equal(t, tt.threshold, got.Threshold)
		assert.Equal(t, tt.exceeded, got.Exceeded, "%s/%d", tt.shell, tt.electrons)
	}
}

func TestCheckIonization_CaseInsensitive(t *testing.T) {
	engine := formula.New(constants.Iron())
	e0 := referenceE0(t)

	lower, err := engine.CheckIonization(e0, "n", 2)
	require.NoError(t, err)
	upper, err := engine.CheckIonization(e0, "N", 2)
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestCheckIonization_StrictComparison(t *testing.T) {
	table := constants.Iron()
	// 2 * 8.33505 lands exactly on the stored K threshold.
	got, err := formula.CheckIonization(table, 16.6701/2, "K", 2)
	require.NoError(t, err)
	assert.Equal(t, 16.6701, got.Energy)
	assert.False(t, got.Exceeded)
}

func TestCheckIonization_UnknownShell(t *testing.T) {
	_, err := formula.CheckIonization(constants.Iron(), 1, "X", 2)
	assert.True(t, errors.Is(err, domain.ErrUnknownShell))
	assert.Contains(t, err.Error(), `"X"`)
}

func TestCheckIonization_NegativeElectrons(t *testing.T) {
	_, err := formula.CheckIonization(constants.Iron(), 1, "K", -1)
	assert.True(t, errors.Is(err, domain.ErrDomain))
}

func TestMagneticMoment_Reference(t *testing.T) {
	m, err := formula.MagneticMoment(constants.Iron(), 6)
	require.NoError(t, err)

	assert.Equal(t, 6, m.PhaseIndex)
	assert.Equal(t, 0.4999, m.Coefficient)
	assert.InEpsilon(t, 1.386036, m.SixthRoot, 1e-6)
	assert.InEpsilon(t, 2.481933e-02, m.Ratio, 1e-6)
	assert.InEpsilon(t, 1.759835e-25, m.PerAtom, 1e-6)
	assert.InEpsilon(t, 3.089959e+10, m.Total, 1e-6)

	wantTotal := constants.Avogadro * m.PerAtom * constants.IronMassFraction *
		constants.ReferenceScaling / constants.IronAtomicWeight
	assert.Equal(t, wantTotal, m.Total)
}

func TestMagneticMoment_OutOfRange(t *testing.T) {
	table := constants.Iron()
	for _, idx := range []int{-1, table.Len()} {
		_, err := formula.MagneticMoment(table, idx)
		assert.True(t, errors.Is(err, domain.ErrRange), "index %d", idx)
	}
}

func TestMagneticMoment_Bounds(t *testing.T) {
	engine := formula.New(constants.Iron())
	_, err := engine.MagneticMoment(0)
	require.NoError(t, err)
	_, err = engine.MagneticMoment(engine.Table().Len() - 1)
	require.NoError(t, err)
}

func TestRound4(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{7.8765867418899855, 7.8766},
		{2.0, 2.0},
		{4.000000000000001, 4.0},
		{-1.23456, -1.2346},
		{0.00004, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formula.Round4(tt.in), "Round4(%v)", tt.in)
	}
	assert.True(t, math.IsNaN(formula.Round4(math.NaN())))
}
