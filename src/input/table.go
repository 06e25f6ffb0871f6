package input

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"

	"github.com/xuri/excelize/v2"
)

func sqrtAbs(v float64) float64 { return math.Sqrt(math.Abs(v)) }

// readCSV reads every record of a comma separated file. Rows may have
// differing lengths; the column lookup checks bounds.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return rows, nil
}

// readXLSX returns the rows of a sheet; an empty name picks the first sheet.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: workbook has no sheets", ErrMalformed)}
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}
	return rows, nil
}
