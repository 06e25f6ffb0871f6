// Package hist holds the binned data types used by the plots (histograms and
// efficiency curves) together with the arithmetic the plots need: cloning,
// bin-wise division, efficiency ratios and efficiency integrals.
//
// Bins are zero-indexed. There are no under/overflow bins in the slices; values
// filled outside the axis range are tallied separately.
package hist

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrBinning reports an invalid axis definition or two histograms whose bins differ.
	ErrBinning = errors.New("incompatible binning")
	// ErrNilInput reports a nil histogram or curve passed to an operation.
	ErrNilInput = errors.New("nil input")
	// ErrBinIndex reports a bin index outside [0, Len()).
	ErrBinIndex = errors.New("bin index out of range")
)

// Attributes are the rendering attributes a style resolver writes into a series.
// Values are the numeric style codes (see package style); they never affect data.
type Attributes struct {
	MarkerColor int
	MarkerStyle int
	MarkerSize  int
	LineColor   int
	LineStyle   int
	LineWidth   int
}

// DefaultAttributes matches a freshly booked histogram: black solid thin line, no marker.
func DefaultAttributes() Attributes {
	return Attributes{MarkerColor: 1, MarkerStyle: 0, MarkerSize: 1, LineColor: 1, LineStyle: 1, LineWidth: 1}
}

// Bin is a read-only view of one bin.
type Bin struct {
	Low       float64
	Width     float64
	Content   float64
	Error     float64
	Undefined bool // result of a division by an empty bin
}

// Histogram is an ordered set of bins with per-bin content and error.
type Histogram struct {
	Name   string
	Title  string
	XTitle string
	YTitle string
	Attr   Attributes

	edges     []float64
	contents  []float64
	errors    []float64
	undefined []bool

	Underflow float64
	Overflow  float64
}

// New books a histogram with nbins uniform bins over [xmin, xmax).
func New(name, title string, nbins int, xmin, xmax float64) (*Histogram, error) {
	if nbins <= 0 || !(xmax > xmin) || math.IsNaN(xmin) || math.IsInf(xmin, 0) || math.IsInf(xmax, 0) {
		return nil, fmt.Errorf("%w: nbins=%d range=[%g,%g]", ErrBinning, nbins, xmin, xmax)
	}
	edges := make([]float64, nbins+1)
	w := (xmax - xmin) / float64(nbins)
	for i := range edges {
		edges[i] = xmin + float64(i)*w
	}
	edges[nbins] = xmax
	return newFromEdges(name, title, edges), nil
}

// NewWithEdges books a histogram with variable bins. edges must be strictly increasing
// and hold at least two values; the slice is copied.
func NewWithEdges(name, title string, edges []float64) (*Histogram, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 edges, got %d", ErrBinning, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, fmt.Errorf("%w: edges not strictly increasing at %d (%g <= %g)", ErrBinning, i, edges[i], edges[i-1])
		}
	}
	return newFromEdges(name, title, append([]float64(nil), edges...)), nil
}

func newFromEdges(name, title string, edges []float64) *Histogram {
	n := len(edges) - 1
	return &Histogram{
		Name:      name,
		Title:     title,
		Attr:      DefaultAttributes(),
		edges:     edges,
		contents:  make([]float64, n),
		errors:    make([]float64, n),
		undefined: make([]bool, n),
	}
}

// Len returns the number of bins.
func (h *Histogram) Len() int { return len(h.contents) }

// XMin is the low edge of the first bin.
func (h *Histogram) XMin() float64 { return h.edges[0] }

// XMax is the high edge of the last bin.
func (h *Histogram) XMax() float64 { return h.edges[len(h.edges)-1] }

// Edges returns a copy of the bin edges.
func (h *Histogram) Edges() []float64 { return append([]float64(nil), h.edges...) }

// LowEdge is the lower edge of bin i.
func (h *Histogram) LowEdge(i int) float64 { return h.edges[i] }

// Width is the width of bin i.
func (h *Histogram) Width(i int) float64 { return h.edges[i+1] - h.edges[i] }

// Center is the midpoint of bin i.
func (h *Histogram) Center(i int) float64 { return 0.5 * (h.edges[i] + h.edges[i+1]) }

// Content is the content of bin i.
func (h *Histogram) Content(i int) float64 { return h.contents[i] }

// Error is the error of bin i.
func (h *Histogram) Error(i int) float64 { return h.errors[i] }

// Bin returns a snapshot of bin i.
func (h *Histogram) Bin(i int) Bin {
	return Bin{
		Low:       h.edges[i],
		Width:     h.Width(i),
		Content:   h.contents[i],
		Error:     h.errors[i],
		Undefined: h.undefined[i],
	}
}

// SetBin overwrites content and error of bin i and clears its undefined flag.
func (h *Histogram) SetBin(i int, content, err float64) error {
	if i < 0 || i >= h.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrBinIndex, i, h.Len())
	}
	h.contents[i] = content
	h.errors[i] = err
	h.undefined[i] = false
	return nil
}

// FindBin returns the index of the bin containing x, -1 for underflow and Len() for overflow.
func (h *Histogram) FindBin(x float64) int {
	if x < h.edges[0] {
		return -1
	}
	if x >= h.edges[len(h.edges)-1] {
		return h.Len()
	}
	// first edge strictly greater than x, minus one
	return sort.Search(len(h.edges), func(i int) bool { return h.edges[i] > x }) - 1
}

// Fill adds weight w at x. Bin errors accumulate the sum of squared weights.
func (h *Histogram) Fill(x, w float64) {
	i := h.FindBin(x)
	switch {
	case i < 0:
		h.Underflow += w
	case i >= h.Len():
		h.Overflow += w
	default:
		h.contents[i] += w
		h.errors[i] = math.Sqrt(h.errors[i]*h.errors[i] + w*w)
	}
}

// Min returns the smallest bin content.
func (h *Histogram) Min() float64 {
	m := math.Inf(1)
	for _, v := range h.contents {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest bin content.
func (h *Histogram) Max() float64 {
	m := math.Inf(-1)
	for _, v := range h.contents {
		if v > m {
			m = v
		}
	}
	return m
}

// Integral sums the bin contents.
func (h *Histogram) Integral() float64 {
	s := 0.0
	for _, v := range h.contents {
		s += v
	}
	return s
}

// Scale multiplies contents and errors by c.
func (h *Histogram) Scale(c float64) {
	for i := range h.contents {
		h.contents[i] *= c
		h.errors[i] *= math.Abs(c)
	}
}

// Clone returns an independent copy: same binning, contents, errors, flags,
// titles and rendering attributes, with no storage shared with h.
func (h *Histogram) Clone() *Histogram {
	return &Histogram{
		Name:      h.Name,
		Title:     h.Title,
		XTitle:    h.XTitle,
		YTitle:    h.YTitle,
		Attr:      h.Attr,
		edges:     append([]float64(nil), h.edges...),
		contents:  append([]float64(nil), h.contents...),
		errors:    append([]float64(nil), h.errors...),
		undefined: append([]bool(nil), h.undefined...),
		Underflow: h.Underflow,
		Overflow:  h.Overflow,
	}
}

// Clone is the package-level form of (*Histogram).Clone; nil yields ErrNilInput.
func Clone(h *Histogram) (*Histogram, error) {
	if h == nil {
		return nil, ErrNilInput
	}
	return h.Clone(), nil
}

// SameBinning reports whether a and b have identical edges.
func SameBinning(a, b *Histogram) bool {
	if a == nil || b == nil || len(a.edges) != len(b.edges) {
		return false
	}
	for i := range a.edges {
		if a.edges[i] != b.edges[i] {
			return false
		}
	}
	return true
}

func checkPair(a, b *Histogram) error {
	if a == nil || b == nil {
		return ErrNilInput
	}
	if !SameBinning(a, b) {
		return fmt.Errorf("%w: %q has %d bins, %q has %d", ErrBinning, a.Name, a.Len(), b.Name, b.Len())
	}
	return nil
}

// SetTitle and Attributes let the style package format a histogram.
func (h *Histogram) SetTitle(s string)       { h.Title = s }
func (h *Histogram) Attributes() *Attributes { return &h.Attr }
