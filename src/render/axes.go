package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nzipper/root-plotting/src/style"
)

// axes holds what the axis renderable needs for one pad.
type axes struct {
	format      style.AxisFormat
	xmin, xmax  float64
	ymin, ymax  float64
	xticks      []chart.Tick
	yticks      []chart.Tick
	xtitle      string
	ytitle      string
	hideXLabels bool
	padH        int
}

// axesRenderable draws tick marks, tick labels and axis titles around the
// frame. go-chart's own axes are hidden so the frame stays where the pad
// margins put it.
func axesRenderable(a axes) chart.Renderable {
	return func(r chart.Renderer, fr chart.Box, defaults chart.Style) {
		h := float64(a.padH)
		labelPx := a.format.LabelSize * h
		titlePx := a.format.TitleSize * h
		offPx := int(math.Round(a.format.LabelOffset * h))
		tick := fr.Width() / 60
		if tick < 4 {
			tick = 4
		}
		px := func(v float64) int {
			return fr.Left + int(math.Round((v-a.xmin)/(a.xmax-a.xmin)*float64(fr.Width())))
		}
		py := func(v float64) int {
			return fr.Bottom - int(math.Round((v-a.ymin)/(a.ymax-a.ymin)*float64(fr.Height())))
		}

		r.ResetStyle()
		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(1)
		for _, t := range a.xticks {
			x := px(t.Value)
			r.MoveTo(x, fr.Bottom)
			r.LineTo(x, fr.Bottom-tick)
			r.Stroke()
		}
		for _, t := range a.yticks {
			y := py(t.Value)
			r.MoveTo(fr.Left, y)
			r.LineTo(fr.Left+tick, y)
			r.Stroke()
		}

		setFont := func(size float64) {
			r.ResetStyle()
			r.SetFont(defaults.Font)
			r.SetFontColor(drawing.ColorBlack)
			r.SetFontSize(size)
		}

		labelBottom := fr.Bottom + offPx
		if !a.hideXLabels {
			setFont(labelPx)
			for _, t := range a.xticks {
				tb := r.MeasureText(t.Label)
				r.Text(t.Label, px(t.Value)-tb.Width()/2, fr.Bottom+offPx+tb.Height())
				if b := fr.Bottom + offPx + tb.Height(); b > labelBottom {
					labelBottom = b
				}
			}
		}

		maxLabelW := 0
		setFont(labelPx)
		for _, t := range a.yticks {
			tb := r.MeasureText(t.Label)
			if tb.Width() > maxLabelW {
				maxLabelW = tb.Width()
			}
			r.Text(t.Label, fr.Left-offPx-tb.Width()-2, py(t.Value)+tb.Height()/2)
		}

		if a.xtitle != "" && !a.hideXLabels {
			setFont(titlePx)
			tb := r.MeasureText(a.xtitle)
			y := labelBottom + int(math.Round(a.format.XTitleOffset*titlePx*0.8))
			r.Text(a.xtitle, fr.Right-tb.Width(), y)
		}
		if a.ytitle != "" {
			setFont(titlePx)
			tb := r.MeasureText(a.ytitle)
			x := fr.Left - offPx - maxLabelW - int(math.Round(a.format.YTitleOffset*titlePx*0.6))
			if min := tb.Height() + 2; x < min {
				x = min
			}
			// rotated text runs upward from (x, y); right aligned to the frame top
			r.SetTextRotation(1.5 * math.Pi)
			r.Text(a.ytitle, x, fr.Top+tb.Width())
			r.ClearTextRotation()
		}
	}
}
