package trajectory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadCSV reads a 5-column trajectory file (tau, t, r, theta, phi, one
// sample per line) into a dense matrix suitable for [New]. A first line
// whose fields do not parse as numbers is treated as a header and
// skipped.
func LoadCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is [LoadCSV] over an arbitrary reader.
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = NumColumns
	cr.TrimLeadingSpace = true

	var flat []float64
	rows := 0
	for line := 1; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("trajectory: read csv: %w", err)
		}

		vals, perr := parseRow(record)
		if perr != nil {
			if line == 1 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("trajectory: line %d: %w", line, perr)
		}
		flat = append(flat, vals...)
		rows++
	}

	if rows == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(rows, NumColumns, flat), nil
}

func parseRow(record []string) ([]float64, error) {
	vals := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d %q: %w", i, field, err)
		}
		vals[i] = v
	}
	return vals, nil
}
