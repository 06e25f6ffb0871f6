package input

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nzipper/root-plotting/src/hist"
)

// HistogramDoc is the JSON form of a histogram. Errors may be omitted, in which
// case each bin gets sqrt(|content|).
type HistogramDoc struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	XTitle   string    `json:"x_title,omitempty"`
	YTitle   string    `json:"y_title,omitempty"`
	Edges    []float64 `json:"edges"`
	Contents []float64 `json:"contents"`
	Errors   []float64 `json:"errors,omitempty"`
}

// EfficiencyDoc is the JSON form of an efficiency curve.
type EfficiencyDoc struct {
	Title  string       `json:"title"`
	Passed HistogramDoc `json:"passed"`
	Total  HistogramDoc `json:"total"`
}

// Histogram builds the histogram the document describes.
func (d HistogramDoc) Histogram() (*hist.Histogram, error) {
	h, err := hist.NewWithEdges(d.Name, d.Title, d.Edges)
	if err != nil {
		return nil, err
	}
	if len(d.Contents) != h.Len() {
		return nil, fmt.Errorf("%w: %d contents for %d bins", ErrMalformed, len(d.Contents), h.Len())
	}
	if d.Errors != nil && len(d.Errors) != h.Len() {
		return nil, fmt.Errorf("%w: %d errors for %d bins", ErrMalformed, len(d.Errors), h.Len())
	}
	h.XTitle, h.YTitle = d.XTitle, d.YTitle
	for i, c := range d.Contents {
		e := sqrtAbs(c)
		if d.Errors != nil {
			e = d.Errors[i]
		}
		if err := h.SetBin(i, c, e); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// DocFromHistogram is the inverse of HistogramDoc.Histogram.
func DocFromHistogram(h *hist.Histogram) HistogramDoc {
	d := HistogramDoc{
		Name:     h.Name,
		Title:    h.Title,
		XTitle:   h.XTitle,
		YTitle:   h.YTitle,
		Edges:    h.Edges(),
		Contents: make([]float64, h.Len()),
		Errors:   make([]float64, h.Len()),
	}
	for i := 0; i < h.Len(); i++ {
		d.Contents[i], d.Errors[i] = h.Content(i), h.Error(i)
	}
	return d
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return nil
}

func loadHistogramJSON(path string) (*hist.Histogram, error) {
	var d HistogramDoc
	if err := readJSON(path, &d); err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = baseTitle(path)
	}
	h, err := d.Histogram()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return h, nil
}

func loadEfficiencyJSON(path string) (*hist.Efficiency, error) {
	var d EfficiencyDoc
	if err := readJSON(path, &d); err != nil {
		return nil, err
	}
	pass, err := d.Passed.Histogram()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("passed: %w", err)}
	}
	tot, err := d.Total.Histogram()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("total: %w", err)}
	}
	e, err := hist.NewEfficiency(pass, tot)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if d.Title != "" {
		e.Title = d.Title
	} else if e.Title == "" {
		e.Title = baseTitle(path)
	}
	return e, nil
}
