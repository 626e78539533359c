package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"magmoment/internal/constants"
	"magmoment/internal/domain"
	formulasvc "magmoment/internal/services/formula"
	reportsvc "magmoment/internal/services/report"
	"magmoment/internal/store"
)

// Wire bundles the table, services and stores for the CLI.
type Wire struct {
	Table    domain.Table
	Formulas domain.FormulaService
	Reports  domain.ReportService
	Tables   domain.TableStore
	Saved    domain.ReportStore // nil unless Config.ReportDir is set
	Logger   *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Constant table: built-in unless a whole replacement is supplied.
	tables := store.NewTableFileStore()
	table := constants.Iron()
	if cfg.ConstantsPath != "" {
		loaded, err := tables.LoadTable(cfg.ConstantsPath)
		if err != nil {
			return nil, err
		}
		table = loaded
		log.Info("loaded constant table",
			zap.String("path", cfg.ConstantsPath),
			zap.String("material", table.Material()),
		)
	}
	if !table.Monotonic() {
		log.Warn("coefficient table is not monotonically non-increasing",
			zap.String("material", table.Material()),
			zap.Float64s("coefficients", table.Coefficients()),
		)
	}

	// Optional report persistence.
	var saved domain.ReportStore
	if cfg.ReportDir != "" {
		if err := os.MkdirAll(cfg.ReportDir, 0o700); err != nil {
			return nil, fmt.Errorf("create report dir: %w", err)
		}
		saved = store.NewReportFileStore(cfg.ReportDir)
	}

	// High-level services
	var opts []reportsvc.Option
	if cfg.Now != nil {
		opts = append(opts, reportsvc.WithClock(cfg.Now))
	}
	engine := formulasvc.New(table)
	reports := reportsvc.New(engine, log, opts...)

	return &Wire{
		Table:    table,
		Formulas: engine,
		Reports:  reports,
		Tables:   tables,
		Saved:    saved,
		Logger:   log,
	}, nil
}
