package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nzipper/root-plotting/src/layout"
	"github.com/nzipper/root-plotting/src/style"
)

// LegendEntry is one legend row: a sample of the series style and its label.
type LegendEntry struct {
	Label string
	Style style.Series
}

// Legend is a legend box in normalized pad coordinates.
type Legend struct {
	Box      layout.Box
	TextSize float64 // fraction of the pad height
	Entries  []LegendEntry
}

// EntriesFor builds legend entries from series, skipping unnamed ones.
func EntriesFor(series []BinSeries) []LegendEntry {
	out := make([]LegendEntry, 0, len(series))
	for _, s := range series {
		if s.Name == "" {
			continue
		}
		out = append(out, LegendEntry{Label: s.Name, Style: s.Style})
	}
	return out
}

// legendRenderable draws the legend on a pad of w×h pixels. The box is
// filled white with a thin black border; rows split the height evenly.
func legendRenderable(l Legend, w, h int) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		if len(l.Entries) == 0 {
			return
		}
		box := chart.Box{
			Left:   int(math.Round(l.Box.X1 * float64(w))),
			Right:  int(math.Round(l.Box.X2 * float64(w))),
			Top:    int(math.Round((1 - l.Box.Y2) * float64(h))),
			Bottom: int(math.Round((1 - l.Box.Y1) * float64(h))),
		}
		r.ResetStyle()
		r.SetFillColor(drawing.ColorWhite)
		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(1)
		r.MoveTo(box.Left, box.Top)
		r.LineTo(box.Right, box.Top)
		r.LineTo(box.Right, box.Bottom)
		r.LineTo(box.Left, box.Bottom)
		r.Close()
		r.FillStroke()

		rowH := float64(box.Height()) / float64(len(l.Entries))
		fontSize := math.Min(l.TextSize*float64(h), 0.8*rowH)
		sample := int(math.Max(12, 0.2*float64(box.Width())))
		if sample > 40 {
			sample = 40
		}
		pad := 6
		for i, e := range l.Entries {
			cy := box.Top + int(math.Round((float64(i)+0.5)*rowH))
			x0 := box.Left + pad
			x1 := x0 + sample
			st := e.Style
			if st.StrokeWidth > 0 {
				r.ResetStyle()
				r.SetStrokeColor(st.StrokeColor)
				r.SetStrokeWidth(st.StrokeWidth)
				r.SetStrokeDashArray(st.StrokeDashArray)
				r.MoveTo(x0, cy)
				r.LineTo(x1, cy)
				r.Stroke()
			}
			drawMarker(r, st, (x0+x1)/2, cy)

			r.ResetStyle()
			r.SetFont(defaults.Font)
			r.SetFontColor(drawing.ColorBlack)
			r.SetFontSize(fontSize)
			tb := r.MeasureText(e.Label)
			r.Text(e.Label, x1+pad, cy+tb.Height()/2)
		}
	}
}
