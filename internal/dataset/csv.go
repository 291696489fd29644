package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/synapse-ml/synapse/internal/tensor"
)

// Table is a numeric CSV table: a header row and one value per column in
// every row.
type Table struct {
	Header []string
	Rows   [][]tensor.Scalar
}

// LoadCSV reads a numeric CSV file with a header row.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses numeric CSV from r. The first record is the header; every
// other record must have the same number of fields, each a float.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file is empty or missing header: %w", tensor.ErrInsufficientData)
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}

	rows := make([][]tensor.Scalar, 0, len(records)-1)
	for i, record := range records[1:] {
		row := make([]tensor.Scalar, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value at row %d, column %q: %w", i+1, header[j], err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.Header {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// XY splits the table into a feature matrix and a target vector.
//
// target names the target column; an empty target selects the last column.
// features names the feature columns in matrix order; when empty every
// column except the target is a feature, in header order.
func (t *Table) XY(target string, features []string) (*tensor.Matrix, *tensor.Vector, error) {
	tcol, fcols, err := t.columns(target, features)
	if err != nil {
		return nil, nil, err
	}

	cols := len(fcols)
	x := tensor.NewMatrix(len(t.Rows), cols)
	y := tensor.NewVector(len(t.Rows))
	xd, yd := x.Data(), y.Data()

	for i, row := range t.Rows {
		yd[i] = row[tcol]
		for k, j := range fcols {
			xd[i*cols+k] = row[j]
		}
	}
	return x, y, nil
}

// FeatureNames returns the names of the columns XY uses as features.
func (t *Table) FeatureNames(target string, features []string) ([]string, error) {
	_, fcols, err := t.columns(target, features)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(fcols))
	for k, j := range fcols {
		names[k] = t.Header[j]
	}
	return names, nil
}

// columns resolves the target and feature column indices.
func (t *Table) columns(target string, features []string) (int, []int, error) {
	if len(t.Header) < 2 {
		return 0, nil, fmt.Errorf("dataset: need at least one feature and a target column: %w", tensor.ErrInsufficientData)
	}

	tcol := len(t.Header) - 1
	if target != "" {
		var ok bool
		if tcol, ok = t.Column(target); !ok {
			return 0, nil, fmt.Errorf("dataset: unknown target column %q", target)
		}
	}

	if len(features) == 0 {
		fcols := make([]int, 0, len(t.Header)-1)
		for j := range t.Header {
			if j != tcol {
				fcols = append(fcols, j)
			}
		}
		return tcol, fcols, nil
	}

	seen := make(map[int]bool, len(features))
	fcols := make([]int, 0, len(features))
	for _, name := range features {
		j, ok := t.Column(name)
		switch {
		case !ok:
			return 0, nil, fmt.Errorf("dataset: unknown feature column %q", name)
		case j == tcol:
			return 0, nil, fmt.Errorf("dataset: column %q is the target and cannot be a feature", name)
		case seen[j]:
			return 0, nil, fmt.Errorf("dataset: feature column %q listed twice", name)
		}
		seen[j] = true
		fcols = append(fcols, j)
	}
	return tcol, fcols, nil
}
