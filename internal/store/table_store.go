package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"magmoment/internal/domain"
)

// ErrUnsupportedFormat is returned for table files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// tableFile is the on-disk layout of a constant table.
type tableFile struct {
	Material     string             `toml:"material" yaml:"material"`
	Constants    domain.ConstantSet `toml:"constants" yaml:"constants"`
	Coefficients []float64          `toml:"coefficients" yaml:"coefficients"`
	Thresholds   map[string]float64 `toml:"thresholds" yaml:"thresholds"`
}

type tableFormat int

const (
	formatTOML tableFormat = iota + 1
	formatYAML
)

func formatOf(path string) (tableFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q (want .toml, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
}

// TableFileStore reads and writes constant tables. The format follows the
// file extension.
type TableFileStore struct {
	mu sync.Mutex
}

// NewTableFileStore returns a TableFileStore.
func NewTableFileStore() *TableFileStore { return &TableFileStore{} }

// LoadTable reads, decodes and validates the table at path.
func (s *TableFileStore) LoadTable(path string) (domain.Table, error) {
	format, err := formatOf(path)
	if err != nil {
		return domain.Table{}, err
	}

	s.mu.Lock()
	b, found, err := readDocument(path)
	s.mu.Unlock()
	if err != nil {
		return domain.Table{}, fmt.Errorf("read table: %w", err)
	}
	if !found {
		return domain.Table{}, fmt.Errorf("read table: %s: %w", path, os.ErrNotExist)
	}

	var f tableFile
	switch format {
	case formatTOML:
		err = toml.Unmarshal(b, &f)
	case formatYAML:
		err = yaml.Unmarshal(b, &f)
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse table %s: %w", path, err)
	}

	thresholds := make(map[domain.Shell]float64, len(f.Thresholds))
	for label, v := range f.Thresholds {
		thresholds[domain.Shell(label)] = v
	}
	table := domain.NewTable(f.Material, f.Constants, f.Coefficients, thresholds)
	if err := table.Validate(); err != nil {
		return domain.Table{}, fmt.Errorf("invalid table %s: %w", path, err)
	}
	return table, nil
}

// SaveTable encodes table in the format implied by path and writes it.
func (s *TableFileStore) SaveTable(path string, table domain.Table) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	b, err := encodeTable(format, table)
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return replaceFile(path, b, 0o644)
}

// EncodeTOML renders table as a TOML document.
func EncodeTOML(table domain.Table) ([]byte, error) {
	return encodeTable(formatTOML, table)
}

func encodeTable(format tableFormat, table domain.Table) ([]byte, error) {
	f := tableFile{
		Material:     table.Material(),
		Constants:    table.Constants(),
		Coefficients: table.Coefficients(),
		Thresholds:   make(map[string]float64),
	}
	for shell, v := range table.Thresholds() {
		f.Thresholds[shell.String()] = v
	}

	if format == formatYAML {
		return yaml.Marshal(f)
	}
	return toml.Marshal(f)
}

// Compile-time assertion that TableFileStore implements domain.TableStore.
var _ domain.TableStore = (*TableFileStore)(nil)
