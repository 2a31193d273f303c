package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CombinedFile is the document mapping every sheet name to its records.
const CombinedFile = "combined_export.json"

// MissingError is returned when a sheet has no snapshot file yet.
type MissingError struct {
	Sheet string
	Path  string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("snapshot for sheet %q not found at %s: run `extract` first", e.Sheet, e.Path)
}

// FileName returns the snapshot file name for a sheet ("Mutasi Gudang" -> "mutasi_gudang.json").
func FileName(sheet string) string {
	return strings.ReplaceAll(strings.ToLower(sheet), " ", "_") + ".json"
}

// Write stores one document per sheet plus the combined document, replacing any
// previous output. Sheets missing from data are written as empty arrays.
func Write(dir string, sheets []string, data map[string][]Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	var combined bytes.Buffer
	combined.WriteByte('{')
	for i, sheet := range sheets {
		records := data[sheet]
		if records == nil {
			records = []Record{}
		}
		doc, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("encode sheet %s: %w", sheet, err)
		}
		if err := writeIndented(filepath.Join(dir, FileName(sheet)), doc); err != nil {
			return err
		}

		if i > 0 {
			combined.WriteByte(',')
		}
		name, _ := json.Marshal(sheet)
		combined.Write(name)
		combined.WriteByte(':')
		combined.Write(doc)
	}
	combined.WriteByte('}')

	return writeIndented(filepath.Join(dir, CombinedFile), combined.Bytes())
}

// Read loads the records of one sheet.
func Read(dir, sheet string) ([]Record, error) {
	path := filepath.Join(dir, FileName(sheet))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingError{Sheet: sheet, Path: path}
		}
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return records, nil
}

// writeIndented writes through a temp file and rename so readers never see a partial document.
func writeIndented(path string, compact []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("indent %s: %w", path, err)
	}
	out.WriteByte('\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
