// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpca/matrix"
)

// readMatrixCSV parses a numeric CSV table. A first record holding any
// non-numeric cell is taken as a header and skipped. Empty and "NaN" cells
// become NaN and are counted as missing; an infinite cell is an error.
func readMatrixCSV(r io.Reader) (*matrix.Dense, int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(records) > 0 && isHeader(records[0]) {
		records = records[1:]
	}

	var missing int
	rows := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, ok, err := parseCell(cell)
			if err != nil {
				return nil, 0, fmt.Errorf("record %d, field %d: %w", i+1, j+1, err)
			}
			if !ok {
				missing++
			} else if math.IsInf(v, 0) {
				return nil, 0, fmt.Errorf("record %d, field %d: %w", i+1, j+1, matrix.ErrNaNInf)
			}
			row[j] = v
		}
		rows[i] = row
	}

	m, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, 0, err
	}

	return m, missing, nil
}

// parseCell returns (value, present, error); a missing cell is (NaN, false, nil).
func parseCell(cell string) (float64, bool, error) {
	s := strings.TrimSpace(cell)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN(), false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}

	return v, true, nil
}

func isHeader(rec []string) bool {
	for _, cell := range rec {
		if _, _, err := parseCell(cell); err != nil {
			return true
		}
	}

	return false
}

func readMatrixFile(path string) (*matrix.Dense, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	m, missing, err := readMatrixCSV(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return m, missing, nil
}

func writeMatrixCSV(w io.Writer, m *matrix.Dense) error {
	cw := csv.NewWriter(w)
	for _, row := range m.ToRows() {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeMatrixFile(path string, m *matrix.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeMatrixCSV(f, m); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
