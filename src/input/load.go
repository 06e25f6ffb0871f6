// Package input reads histograms and efficiency curves from JSON, CSV and
// XLSX files, plot configuration files, and batch job manifests.
package input

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nzipper/root-plotting/src/hist"
)

var (
	// ErrUnsupportedInput reports a file extension with no loader.
	ErrUnsupportedInput = errors.New("unsupported input format")
	// ErrMalformed reports content that does not describe a histogram.
	ErrMalformed = errors.New("malformed input")
)

// LoadError locates a failure inside an input file. Row is 1-based, 0 when
// the failure is not tied to a row.
type LoadError struct {
	Path string
	Row  int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(path string, row int, format string, args ...interface{}) error {
	return &LoadError{Path: path, Row: row, Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformed}, args...)...)}
}

// LoadHistogram reads a histogram from path. sheet selects the XLSX sheet;
// empty means the first one. Other formats ignore it.
func LoadHistogram(path, sheet string) (*hist.Histogram, error) {
	switch ext(path) {
	case ".json":
		return loadHistogramJSON(path)
	case ".csv":
		rows, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		return histogramFromTable(path, rows)
	case ".xlsx":
		rows, err := readXLSX(path, sheet)
		if err != nil {
			return nil, err
		}
		return histogramFromTable(path, rows)
	}
	return nil, &LoadError{Path: path, Err: ErrUnsupportedInput}
}

// LoadEfficiency reads an efficiency curve from path, see LoadHistogram.
func LoadEfficiency(path, sheet string) (*hist.Efficiency, error) {
	switch ext(path) {
	case ".json":
		return loadEfficiencyJSON(path)
	case ".csv":
		rows, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		return efficiencyFromTable(path, rows)
	case ".xlsx":
		rows, err := readXLSX(path, sheet)
		if err != nil {
			return nil, err
		}
		return efficiencyFromTable(path, rows)
	}
	return nil, &LoadError{Path: path, Err: ErrUnsupportedInput}
}

func ext(path string) string { return strings.ToLower(filepath.Ext(path)) }

// baseTitle is the file name without directory and extension.
func baseTitle(path string) string {
	b := filepath.Base(path)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

// table is a header-indexed view of rows read from CSV or XLSX.
type table struct {
	path string
	cols map[string]int
	rows [][]string
}

func newTable(path string, rows [][]string) (*table, error) {
	if len(rows) == 0 {
		return nil, loadErr(path, 0, "no header row")
	}
	t := &table{path: path, cols: make(map[string]int), rows: rows[1:]}
	for i, h := range rows[0] {
		t.cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return t, nil
}

func (t *table) has(col string) bool {
	_, ok := t.cols[col]
	return ok
}

func (t *table) require(cols ...string) error {
	for _, c := range cols {
		if !t.has(c) {
			return loadErr(t.path, 1, "missing column %q", c)
		}
	}
	return nil
}

// float reads column col of data row i. Row numbers in errors count the header.
func (t *table) float(i int, col string) (float64, error) {
	row := t.rows[i]
	j := t.cols[col]
	if j >= len(row) || strings.TrimSpace(row[j]) == "" {
		return 0, loadErr(t.path, i+2, "empty %s", col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
	if err != nil {
		return 0, loadErr(t.path, i+2, "%s: %v", col, err)
	}
	return v, nil
}

// blank reports a row with no non-space cells; trailing empty rows are skipped.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// edges reads low/high columns into bin edges. Bins must be contiguous.
func (t *table) edges() ([]float64, []int, error) {
	var edges []float64
	var idx []int
	for i, row := range t.rows {
		if blank(row) {
			continue
		}
		lo, err := t.float(i, "low")
		if err != nil {
			return nil, nil, err
		}
		hi, err := t.float(i, "high")
		if err != nil {
			return nil, nil, err
		}
		if len(edges) == 0 {
			edges = append(edges, lo)
		} else if last := edges[len(edges)-1]; math.Abs(last-lo) > 1e-9*math.Max(1, math.Abs(lo)) {
			return nil, nil, loadErr(t.path, i+2, "bin starts at %g, previous ended at %g", lo, last)
		}
		edges = append(edges, hi)
		idx = append(idx, i)
	}
	if len(idx) == 0 {
		return nil, nil, loadErr(t.path, 0, "no bins")
	}
	return edges, idx, nil
}

func histogramFromTable(path string, rows [][]string) (*hist.Histogram, error) {
	t, err := newTable(path, rows)
	if err != nil {
		return nil, err
	}
	if err := t.require("low", "high", "content"); err != nil {
		return nil, err
	}
	edges, idx, err := t.edges()
	if err != nil {
		return nil, err
	}
	name := baseTitle(path)
	h, err := hist.NewWithEdges(name, name, edges)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	withErr := t.has("error")
	for b, i := range idx {
		c, err := t.float(i, "content")
		if err != nil {
			return nil, err
		}
		e := sqrtAbs(c)
		if withErr {
			if e, err = t.float(i, "error"); err != nil {
				return nil, err
			}
		}
		if err := h.SetBin(b, c, e); err != nil {
			return nil, &LoadError{Path: path, Row: i + 2, Err: err}
		}
	}
	return h, nil
}

func efficiencyFromTable(path string, rows [][]string) (*hist.Efficiency, error) {
	t, err := newTable(path, rows)
	if err != nil {
		return nil, err
	}
	if err := t.require("low", "high", "passed", "total"); err != nil {
		return nil, err
	}
	edges, idx, err := t.edges()
	if err != nil {
		return nil, err
	}
	name := baseTitle(path)
	pass, err := hist.NewWithEdges(name, name, edges)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	tot, err := hist.NewWithEdges(name+"_total", name, edges)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	for b, i := range idx {
		k, err := t.float(i, "passed")
		if err != nil {
			return nil, err
		}
		n, err := t.float(i, "total")
		if err != nil {
			return nil, err
		}
		if err := pass.SetBin(b, k, sqrtAbs(k)); err != nil {
			return nil, &LoadError{Path: path, Row: i + 2, Err: err}
		}
		if err := tot.SetBin(b, n, sqrtAbs(n)); err != nil {
			return nil, &LoadError{Path: path, Row: i + 2, Err: err}
		}
	}
	e, err := hist.NewEfficiency(pass, tot)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return e, nil
}
