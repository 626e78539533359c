package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"magmoment/internal/domain"
)

const reportPrefix = "report-"

// ReportFileStore persists finished reports as one JSON file per run.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a ReportFileStore rooted at dir.
func NewReportFileStore(dir string) *ReportFileStore {
	return &ReportFileStore{dir: dir}
}

// SaveReport writes report and returns the path it was written to.
func (s *ReportFileStore) SaveReport(report domain.Report) (string, error) {
	path, err := s.path(report.RunID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := encodeReport(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	if err := replaceFile(path, b, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// LoadReport retrieves the report stored for runID.
func (s *ReportFileStore) LoadReport(runID string) (domain.Report, bool, error) {
	path, err := s.path(runID)
	if err != nil {
		return domain.Report{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var report domain.Report
	found, err := decodeReport(path, &report)
	if err != nil || !found {
		return domain.Report{}, false, err
	}
	return report, true, nil
}

func (s *ReportFileStore) path(runID string) (string, error) {
	if runID == "" || strings.ContainsAny(runID, `/\`) || runID == "." || runID == ".." {
		return "", fmt.Errorf("invalid run id %q", runID)
	}
	return filepath.Join(s.dir, reportPrefix+runID+".json"), nil
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
