// Package fixture - fixture (de)serialization.
//
// Write* functions emit indented JSON with the field order declared in
// types.go, which keeps generated files diff-friendly. Read* functions
// are strict about payload values (Levels range-checks every entry) but
// tolerant of formatting and unknown sibling fields, so fixtures produced
// by other toolchains load as long as the schema names match.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Canonical fixture file names, one per kernel.
const (
	DCTFile = "dct_test_cases.json"
	SVDFile = "svd_test_cases.json"
	DWTFile = "dwt_test_cases.json"
	YUVFile = "yuv_test_cases.json"
)

// WriteDCTCases emits the DCT case list to w as indented JSON.
func WriteDCTCases(w io.Writer, cases []DCTCase) error { return writeCases(w, cases) }

// WriteSVDCases emits the SVD case list to w as indented JSON.
func WriteSVDCases(w io.Writer, cases []SVDCase) error { return writeCases(w, cases) }

// WriteDWTCases emits the DWT case list to w as indented JSON.
func WriteDWTCases(w io.Writer, cases []DWTCase) error { return writeCases(w, cases) }

// WriteYUVCases emits the YUV case list to w as indented JSON.
func WriteYUVCases(w io.Writer, cases []YUVCase) error { return writeCases(w, cases) }

// ReadDCTCases parses a DCT case list from r.
func ReadDCTCases(r io.Reader) ([]DCTCase, error) { return readCases[DCTCase](r) }

// ReadSVDCases parses an SVD case list from r.
func ReadSVDCases(r io.Reader) ([]SVDCase, error) { return readCases[SVDCase](r) }

// ReadDWTCases parses a DWT case list from r.
func ReadDWTCases(r io.Reader) ([]DWTCase, error) { return readCases[DWTCase](r) }

// ReadYUVCases parses a YUV case list from r.
func ReadYUVCases(r io.Reader) ([]YUVCase, error) { return readCases[YUVCase](r) }

// WriteDir generates all four kernel inventories from g and writes them
// into dir under the canonical file names. The directory must exist.
// Generation stops at the first failing kernel or file.
func WriteDir(dir string, g *Generator) error {
	if err := writeFile(filepath.Join(dir, DCTFile), g.DCTCases); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, SVDFile), g.SVDCases); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, DWTFile), g.DWTCases); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, YUVFile), g.YUVCases)
}

// writeCases pretty-prints any case list to w.
func writeCases[C any](w io.Writer, cases []C) error {
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cases); err != nil {
		return fmt.Errorf("fixture: encode cases: %w", err)
	}
	return nil
}

// readCases decodes a case list from r.
func readCases[C any](r io.Reader) ([]C, error) {
	var cases []C
	if err := json.NewDecoder(r).Decode(&cases); err != nil {
		return nil, fmt.Errorf("fixture: decode cases: %w", err)
	}
	return cases, nil
}

// writeFile builds one case list and persists it at path.
func writeFile[C any](path string, build func() ([]C, error)) error {
	cases, err := build()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fixture: create %s: %w", path, err)
	}
	if err = writeCases(f, cases); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("fixture: close %s: %w", path, err)
	}
	return nil
}
