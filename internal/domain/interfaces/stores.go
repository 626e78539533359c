package interfaces

import domaintypes "magmoment/internal/domain/types"

// TableStore reads and writes constant table files.
type TableStore interface {
	LoadTable(path string) (domaintypes.Table, error)
	SaveTable(path string, table domaintypes.Table) error
}

// ReportStore persists finished reports by run ID.
type ReportStore interface {
	SaveReport(report domaintypes.Report) (string, error)
	LoadReport(runID string) (domaintypes.Report, bool, error)
}
