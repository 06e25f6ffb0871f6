package hist

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInconsistent reports a passed histogram that exceeds its total in some bin.
var ErrInconsistent = errors.New("passed exceeds total")

// Efficiency is a per-bin binomial proportion built from a passed and a total
// histogram. The data is fixed at construction; only Title and Attr may change.
type Efficiency struct {
	Title string
	Attr  Attributes

	passed *Histogram
	total  *Histogram
}

// NewEfficiency copies passed and total into a new curve. Both must share binning,
// hold no negative counts and satisfy passed <= total in every bin.
func NewEfficiency(passed, total *Histogram) (*Efficiency, error) {
	if err := checkPair(passed, total); err != nil {
		return nil, err
	}
	for i := range passed.contents {
		k, n := passed.contents[i], total.contents[i]
		if k < 0 || n < 0 || k > n {
			return nil, fmt.Errorf("%w: bin %d has %g passed of %g", ErrInconsistent, i, k, n)
		}
	}
	return &Efficiency{
		Title:  passed.Title,
		Attr:   DefaultAttributes(),
		passed: passed.Clone(),
		total:  total.Clone(),
	}, nil
}

// Passed returns a copy of the numerator histogram.
func (e *Efficiency) Passed() *Histogram { return e.passed.Clone() }

// Total returns a copy of the denominator histogram.
func (e *Efficiency) Total() *Histogram { return e.total.Clone() }

// Len returns the number of bins.
func (e *Efficiency) Len() int { return e.passed.Len() }

// LowEdge, Width, Center, XMin and XMax describe the shared binning.
func (e *Efficiency) LowEdge(i int) float64 { return e.passed.LowEdge(i) }
func (e *Efficiency) Width(i int) float64   { return e.passed.Width(i) }
func (e *Efficiency) Center(i int) float64  { return e.passed.Center(i) }
func (e *Efficiency) XMin() float64         { return e.passed.XMin() }
func (e *Efficiency) XMax() float64         { return e.passed.XMax() }

// Proportion returns passed/total of bin i with its binomial error; an empty
// total gives (0, 0).
func (e *Efficiency) Proportion(i int) (p, err float64) {
	return binomial(e.passed.contents[i], e.total.contents[i])
}

// Proportions returns the curve as a histogram of per-bin proportions.
func (e *Efficiency) Proportions() *Histogram {
	r, _ := DivideBinomial(e.passed, e.total) // binning already validated
	r.Title = e.Title
	return r
}

// Ratio divides the proportions of a by those of b bin by bin. Errors are
// propagated as for independent quantities. Bins where b's proportion is zero
// hold 0 ± 0 and are flagged Undefined.
func Ratio(a, b *Efficiency) (*Histogram, error) {
	if a == nil || b == nil {
		return nil, ErrNilInput
	}
	pa, pb := a.Proportions(), b.Proportions()
	return Divide(pa, pb)
}

// Integral is the efficiency of a range of bins taken as one.
type Integral struct {
	Passed     float64
	Total      float64
	Efficiency float64 // rounded to 3 decimals
	Error      float64
}

// Integrate sums passed and total over the bins whose low edge lies in
// [floor, ceil]. The last bin of the curve is never included.
//
// The efficiency is rounded to three decimals before the binomial error
// sqrt(eff(1-eff)/total) is taken. An empty numerator or denominator gives 0 ± 0.
func Integrate(e *Efficiency, floor, ceil float64) Integral {
	var num, den float64
	for i := 0; i < e.Len()-1; i++ {
		low := e.passed.LowEdge(i)
		if low < floor || low > ceil {
			continue
		}
		num += e.passed.contents[i]
		den += e.total.contents[i]
	}
	in := Integral{Passed: num, Total: den}
	if num == 0 || den == 0 {
		return in
	}
	in.Efficiency = math.Round(num/den*1000) / 1000
	if in.Efficiency != 0 {
		in.Error = math.Sqrt(in.Efficiency * (1 - in.Efficiency) / den)
	}
	return in
}

// DefaultIntegralRange spans the low edge of the first bin to the low edge of the last.
func DefaultIntegralRange(e *Efficiency) (floor, ceil float64) {
	return e.LowEdge(0), e.LowEdge(e.Len() - 1)
}

// FormatEfficiency renders the efficiency in shortest form, keeping one
// decimal on whole values: "0.5", "1.0", "0.0".
func (in Integral) FormatEfficiency() string {
	s := strconv.FormatFloat(in.Efficiency, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatError renders the error with two decimals in scientific notation
// ("6.45e-02", "0.00e+00" at full efficiency). A zero efficiency, including
// an empty numerator or denominator, renders as "0.0".
func (in Integral) FormatError() string {
	if in.Efficiency == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%0.2e", in.Error)
}

// Label appends the integral to a legend label.
func (in Integral) Label(label string) string {
	return fmt.Sprintf("%s [ε = %s ± %s]", label, in.FormatEfficiency(), in.FormatError())
}

// String is the one-line summary "Integrated Eff = num / den = eff \pm err".
func (in Integral) String() string {
	return fmt.Sprintf("Integrated Eff = %g / %g = %s \\pm %s", in.Passed, in.Total, in.FormatEfficiency(), in.FormatError())
}

// SetTitle and Attributes let the style package format a curve.
func (e *Efficiency) SetTitle(s string)       { e.Title = s }
func (e *Efficiency) Attributes() *Attributes { return &e.Attr }
