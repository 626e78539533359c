package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"magmoment/internal/domain"
)

// readDocument returns the bytes of a table or report file. found is false,
// with a nil error, when the file does not exist.
func readDocument(path string) (b []byte, found bool, err error) {
	b, err = os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return b, true, nil
}

// decodeReport reads the report JSON at path into out.
func decodeReport(path string, out *domain.Report) (found bool, err error) {
	b, found, err := readDocument(path)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return true, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// encodeReport renders a report as indented JSON with a trailing newline.
func encodeReport(r domain.Report) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// replaceFile stages b in a sibling temp file, flushes it, then renames it
// over path. Readers see either the previous document or the new one.
func replaceFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	staged := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(staged)
		}
	}()

	if err = writeAndSync(f, b, mode); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(staged, path)
}

func writeAndSync(f *os.File, b []byte, mode os.FileMode) error {
	if _, err := f.Write(b); err != nil {
		return err
	}
	if err := f.Chmod(mode); err != nil {
		return err
	}
	return f.Sync()
}
