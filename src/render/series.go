package render

import (
	"errors"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/style"
)

// ErrEmptySeries reports a series without bins.
var ErrEmptySeries = errors.New("series has no bins")

// Point is one bin as drawn: a horizontal extent, a value and its error.
type Point struct {
	Low, High float64
	Y, Err    float64
	Skip      bool // undefined bins are not drawn
}

// BinSeries draws binned data with error bars: a horizontal segment across the
// bin, a vertical segment over ±error and an optional marker at the center.
// It implements chart.Series and chart.ValuesProvider.
type BinSeries struct {
	Name   string
	Points []Point
	Style  style.Series
}

// FromHistogram converts a histogram into a drawable series using its rendering attributes.
func FromHistogram(h *hist.Histogram, name string) (BinSeries, error) {
	st, err := style.SeriesStyle(h.Attr)
	if err != nil {
		return BinSeries{}, err
	}
	pts := make([]Point, h.Len())
	for i := range pts {
		b := h.Bin(i)
		pts[i] = Point{Low: b.Low, High: b.Low + b.Width, Y: b.Content, Err: b.Error, Skip: b.Undefined}
	}
	return BinSeries{Name: name, Points: pts, Style: st}, nil
}

// FromEfficiency converts an efficiency curve into a drawable series of proportions.
func FromEfficiency(e *hist.Efficiency, name string) (BinSeries, error) {
	p := e.Proportions()
	p.Attr = e.Attr
	s, err := FromHistogram(p, name)
	if err != nil {
		return BinSeries{}, err
	}
	// an empty denominator has no efficiency to show
	tot := e.Total()
	for i := range s.Points {
		if tot.Content(i) == 0 {
			s.Points[i].Skip = true
		}
	}
	return s, nil
}

// GetName, GetYAxis and GetStyle implement chart.Series.
func (bs BinSeries) GetName() string           { return bs.Name }
func (bs BinSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (bs BinSeries) GetStyle() chart.Style     { return bs.Style.Style }

// Len and GetValues feed go-chart's automatic ranging with bin centers.
func (bs BinSeries) Len() int { return len(bs.Points) }
func (bs BinSeries) GetValues(i int) (float64, float64) {
	p := bs.Points[i]
	return 0.5 * (p.Low + p.High), p.Y
}

// Validate rejects a series with no points.
func (bs BinSeries) Validate() error {
	if len(bs.Points) == 0 {
		return ErrEmptySeries
	}
	return nil
}

// Extent returns the x span and the y span including error bars of drawn bins.
func (bs BinSeries) Extent() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range bs.Points {
		xmin = math.Min(xmin, p.Low)
		xmax = math.Max(xmax, p.High)
		if p.Skip {
			continue
		}
		ymin = math.Min(ymin, p.Y-p.Err)
		ymax = math.Max(ymax, p.Y+p.Err)
	}
	return
}

// Render draws every defined bin inside the frame. Segments are clipped to the
// frame so a configured range narrower than the data does not spill over.
func (bs BinSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := bs.Style
	st.Style = st.Style.InheritFrom(defaults)
	xmin, xmax := xrange.GetMin(), xrange.GetMax()
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	px := func(x float64) int { return canvasBox.Left + xrange.Translate(x) }
	py := func(y float64) int {
		v := canvasBox.Bottom - yrange.Translate(y)
		if v < canvasBox.Top {
			return canvasBox.Top
		}
		if v > canvasBox.Bottom {
			return canvasBox.Bottom
		}
		return v
	}
	for _, p := range bs.Points {
		if p.Skip || p.High < xmin || p.Low > xmax || math.IsNaN(p.Y) {
			continue
		}
		lo, hi := math.Max(p.Low, xmin), math.Min(p.High, xmax)
		cx := 0.5 * (p.Low + p.High)
		y := py(p.Y)

		if st.StrokeWidth > 0 {
			r.ResetStyle()
			r.SetStrokeColor(st.StrokeColor)
			r.SetStrokeWidth(st.StrokeWidth)
			r.SetStrokeDashArray(st.StrokeDashArray)
			r.MoveTo(px(lo), y)
			r.LineTo(px(hi), y)
			r.Stroke()
			if p.Err > 0 && cx >= xmin && cx <= xmax {
				// error bars are always solid
				r.ResetStyle()
				r.SetStrokeColor(st.StrokeColor)
				r.SetStrokeWidth(st.StrokeWidth)
				r.MoveTo(px(cx), py(p.Y-p.Err))
				r.LineTo(px(cx), py(p.Y+p.Err))
				r.Stroke()
			}
		}
		if cx >= xmin && cx <= xmax && y > canvasBox.Top && y < canvasBox.Bottom {
			drawMarker(r, st, px(cx), y)
		}
	}
}

// drawMarker draws the marker glyph centred on (x, y).
func drawMarker(r chart.Renderer, st style.Series, x, y int) {
	if st.Marker == style.ShapeNone {
		return
	}
	rad := st.MarkerRadius
	ri := int(math.Round(rad))
	r.ResetStyle()
	r.SetStrokeColor(st.DotColor)
	r.SetFillColor(st.DotColor)
	r.SetStrokeWidth(1)
	line := func(x0, y0, x1, y1 int) {
		r.MoveTo(x0, y0)
		r.LineTo(x1, y1)
		r.Stroke()
	}
	switch st.Marker {
	case style.ShapePoint:
		r.Circle(1, x, y)
		r.FillStroke()
	case style.ShapeOpenCircle:
		r.Circle(rad, x, y)
		r.Stroke()
	case style.ShapePlus:
		line(x-ri, y, x+ri, y)
		line(x, y-ri, x, y+ri)
	case style.ShapeCross:
		line(x-ri, y-ri, x+ri, y+ri)
		line(x-ri, y+ri, x+ri, y-ri)
	case style.ShapeAsterisk:
		line(x-ri, y, x+ri, y)
		line(x, y-ri, x, y+ri)
		d := int(math.Round(rad * math.Sqrt2 / 2))
		line(x-d, y-d, x+d, y+d)
		line(x-d, y+d, x+d, y-d)
	case style.ShapeTriangle:
		r.MoveTo(x, y-ri)
		r.LineTo(x+ri, y+ri)
		r.LineTo(x-ri, y+ri)
		r.Close()
		r.Stroke()
	case style.ShapeStar:
		polygon(r, x, y, rad, 5)
		r.FillStroke()
	}
}

// polygon traces a star with n points, outer radius rad.
func polygon(r chart.Renderer, x, y int, rad float64, n int) {
	inner := rad * 0.4
	for i := 0; i < 2*n; i++ {
		rr := rad
		if i%2 == 1 {
			rr = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(n)
		px := x + int(math.Round(rr*math.Cos(a)))
		py := y + int(math.Round(rr*math.Sin(a)))
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	r.Close()
}
