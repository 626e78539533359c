package report

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"magmoment/internal/domain"
	"magmoment/internal/services/formula"
)

const (
	// DetailRatio scales the critical density into the secondary density.
	DetailRatio = 0.3333

	// PhaseCount is the number of energy phases generated per run.
	PhaseCount = 14

	// MomentPhaseIndex selects the coefficient used for the magnetic moment.
	MomentPhaseIndex = 6
)

// ShellLoad pairs a shell with the electron count checked against it.
type ShellLoad struct {
	Shell     domain.Shell
	Electrons int
}

var shellPlan = []ShellLoad{
	{Shell: domain.ShellN, Electrons: 2},
	{Shell: domain.ShellM, Electrons: 14},
	{Shell: domain.ShellL, Electrons: 8},
	{Shell: domain.ShellK, Electrons: 2},
}

// ShellPlan returns the ionization checks performed by Run, in order.
func ShellPlan() []ShellLoad { return slices.Clone(shellPlan) }

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRunIDs overrides the run ID generator.
func WithRunIDs(next func() string) Option {
	return func(s *Service) { s.newRunID = next }
}

// Service runs the derivation chain.
type Service struct {
	formulas domain.FormulaService
	log      *zap.Logger
	now      func() time.Time
	newRunID func() string
}

// New returns a report service over formulas. A nil logger discards logs.
func New(formulas domain.FormulaService, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		formulas: formulas,
		log:      log,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseEnergy derives e0 = k / b from the bound table.
func (s *Service) BaseEnergy() (float64, error) {
	c := s.formulas.Table().Constants()
	radius, err := s.formulas.RadiusOfAction(c.MolarVolume)
	if err != nil {
		return 0, fmt.Errorf("radius of action: %w", err)
	}
	e0, err := s.formulas.EnergyFromRadius(radius, c.EnergyCoefficient)
	if err != nil {
		return 0, fmt.Errorf("base energy: %w", err)
	}
	return e0, nil
}

// Run executes the chain once and returns the finished report.
func (s *Service) Run() (domain.Report, error) {
	table := s.formulas.Table()
	c := table.Constants()

	r := domain.Report{
		RunID:       s.newRunID(),
		Material:    table.Material(),
		GeneratedAt: s.now(),
		Constants:   c,
		DetailRatio: DetailRatio,
	}
	log := s.log.With(zap.String("run_id", r.RunID), zap.String("material", r.Material))

	density, err := s.formulas.CriticalDensity(c.AtomicWeight, c.MolarVolume)
	if err != nil {
		return domain.Report{}, fmt.Errorf("critical density: %w", err)
	}
	r.CriticalDensity = density
	r.ScaledDensity = formula.Round4(density * DetailRatio)
	log.Debug("critical density", zap.Float64("s", density), zap.Float64("s2", r.ScaledDensity))

	radius, err := s.formulas.RadiusOfAction(c.MolarVolume)
	if err != nil {
		return domain.Report{}, fmt.Errorf("radius of action: %w", err)
	}
	r.Radius = radius
	log.Debug("radius of action", zap.Float64("b", radius))

	e0, err := s.formulas.EnergyFromRadius(radius, c.EnergyCoefficient)
	if err != nil {
		return domain.Report{}, fmt.Errorf("base energy: %w", err)
	}
	r.BaseEnergy = e0
	log.Debug("base energy", zap.Float64("e0", e0))

	phases, err := s.formulas.GenerateEnergyPhases(e0, PhaseCount)
	if err != nil {
		return domain.Report{}, fmt.Errorf("energy phases: %w", err)
	}
	r.Phases = phases
	log.Debug("energy phases", zap.Int("count", len(phases)))

	r.Ionization = make([]domain.IonizationResult, 0, len(shellPlan))
	for _, load := range shellPlan {
		res, err := s.formulas.CheckIonization(e0, load.Shell.String(), load.Electrons)
		if err != nil {
			return domain.Report{}, fmt.Errorf("ionization check for shell %s: %w", load.Shell, err)
		}
		r.Ionization = append(r.Ionization, res)
		log.Debug("ionization check",
			zap.Stringer("shell", load.Shell),
			zap.Int("electrons", load.Electrons),
			zap.Float64("energy", res.Energy),
			zap.Bool("exceeded", res.Exceeded),
		)
	}

	moment, err := s.formulas.MagneticMoment(MomentPhaseIndex)
	if err != nil {
		return domain.Report{}, fmt.Errorf("magnetic moment: %w", err)
	}
	r.Moment = moment
	log.Debug("magnetic moment",
		zap.Int("phase_index", moment.PhaseIndex),
		zap.Float64("per_atom", moment.PerAtom),
		zap.Float64("total", moment.Total),
	)

	r.Fingerprint, err = Fingerprint(r)
	if err != nil {
		return domain.Report{}, fmt.Errorf("fingerprint: %w", err)
	}
	return r, nil
}

// Compile-time assertion that Service implements domain.ReportService.
var _ domain.ReportService = (*Service)(nil)
