package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"magmoment/internal/app"
	"magmoment/internal/constants"
	"magmoment/internal/domain"
	"magmoment/internal/store"
)

func TestNewWire_Defaults(t *testing.T) {
	w, err := app.NewWire(app.Config{})
	require.NoError(t, err)

	assert.Equal(t, "Fe", w.Table.Material())
	assert.Nil(t, w.Saved)
	assert.NotNil(t, w.Logger)
	assert.Equal(t, w.Table, w.Formulas.Table())
}

func TestNewWire_Clock(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	w, err := app.NewWire(app.Config{Now: func() time.Time { return at }})
	require.NoError(t, err)

	r, err := w.Reports.Run()
	require.NoError(t, err)
	assert.Equal(t, at, r.GeneratedAt)
}

func TestNewWire_ConstantsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fe.yaml")
	require.NoError(t, store.NewTableFileStore().SaveTable(path, constants.Iron()))

	w, err := app.NewWire(app.Config{ConstantsPath: path})
	require.NoError(t, err)
	assert.Equal(t, constants.Iron().Constants(), w.Table.Constants())
}

func TestNewWire_BadConstantsFile(t *testing.T) {
	_, err := app.NewWire(app.Config{ConstantsPath: filepath.Join(t.TempDir(), "none.toml")})
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestNewWire_WarnsOnNonMonotonicTable(t *testing.T) {
	iron := constants.Iron()
	coeffs := iron.Coefficients()
	coeffs[0], coeffs[1] = coeffs[1], coeffs[0]
	table := domain.NewTable("Fe-swapped", iron.Constants(), coeffs, iron.Thresholds())

	path := filepath.Join(t.TempDir(), "swapped.toml")
	require.NoError(t, store.NewTableFileStore().SaveTable(path, table))

	core, logs := observer.New(zap.InfoLevel)
	_, err := app.NewWire(app.Config{ConstantsPath: path, Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("coefficient table is not monotonically non-increasing").Len())
}

func TestNewWire_ReportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w, err := app.NewWire(app.Config{ReportDir: dir})
	require.NoError(t, err)
	require.NotNil(t, w.Saved)

	r, err := w.Reports.Run()
	require.NoError(t, err)
	path, err := w.Saved.SaveReport(r)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}
