package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"flowsolve/internal/flowshop"
)

// readCSV loads a processing-time matrix and job display names from a CSV
// file. Layout is auto-detected:
//   - a header row is assumed when any cell past the first column of the
//     first row is not numeric;
//   - a job-name column is assumed when the first cell of the first data row
//     is not numeric; otherwise names default to Job_1..Job_n.
//
// The remaining cells must form a rectangular non-negative matrix, rows =
// jobs, columns = machines.
func readCSV(path string) (*flowshop.Instance, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // raggedness is reported by FromRows, with row numbers
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows [][]string
	for _, rec := range records {
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s contains no data rows", flowshop.ErrDimension, path)
	}

	if hasHeader(rows[0]) {
		rows = rows[1:]
		if len(rows) == 0 {
			return nil, nil, fmt.Errorf("%w: %s contains only a header", flowshop.ErrDimension, path)
		}
	}

	hasNames := !isNumeric(rows[0][0])

	names := make([]string, len(rows))
	matrix := make([][]float64, len(rows))
	for i, rec := range rows {
		cells := rec
		if hasNames {
			if len(rec) < 2 {
				return nil, nil, fmt.Errorf("%w: row %d has no processing times", flowshop.ErrDimension, i)
			}
			names[i] = strings.TrimSpace(rec[0])
			cells = rec[1:]
		} else {
			names[i] = fmt.Sprintf("Job_%d", i+1)
		}

		matrix[i] = make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d column %d: %q is not a number", flowshop.ErrDomain, i, j, cell)
			}
			matrix[i][j] = v
		}
	}

	inst, err := flowshop.FromRows(matrix)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, names, nil
}

// hasHeader reports whether a first row looks like column labels: any
// non-numeric cell past the first column. The first column is skipped since
// it may hold a job name in every row.
func hasHeader(row []string) bool {
	for _, cell := range row[1:] {
		if !isNumeric(cell) {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
