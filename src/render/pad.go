// Package render draws histograms and efficiencies onto canvases built by
// the layout package. Each pad is rendered with go-chart into its own image
// and composited onto the canvas at the pad's rectangle.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nzipper/root-plotting/src/layout"
	"github.com/nzipper/root-plotting/src/logging"
	"github.com/nzipper/root-plotting/src/style"
)

// ErrNoPad reports a draw call without a target pad.
var ErrNoPad = errors.New("no target pad")

// Range is an axis range. A nil *Range means "fit the data".
type Range [2]float64

// PadSpec is everything drawn on one pad, in draw order: the first series
// sets the frame, later series overlay it, the reference line follows and
// the legend goes on top.
type PadSpec struct {
	Format      style.AxisFormat
	XTitle      string
	YTitle      string
	XRange      *Range
	YRange      *Range
	Series      []BinSeries
	Legend      *Legend
	RefLine     *float64 // dashed horizontal line across the x range
	HideXLabels bool
}

// Surface is a canvas being drawn on.
type Surface struct {
	Canvas *layout.Canvas
	img    *image.RGBA
}

// NewSurface allocates a white canvas of the layout's size.
func NewSurface(c *layout.Canvas) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, c.Size.W, c.Size.H))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Surface{Canvas: c, img: img}
}

// Image returns the canvas image.
func (s *Surface) Image() *image.RGBA { return s.img }

// ResolveRanges returns the x and y ranges a pad will use.
func ResolveRanges(spec PadSpec) (x, y Range) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		a, b, c, d := s.Extent()
		xmin, xmax = math.Min(xmin, a), math.Max(xmax, b)
		ymin, ymax = math.Min(ymin, c), math.Max(ymax, d)
	}
	if spec.XRange != nil {
		x = *spec.XRange
	} else if xmax > xmin {
		x = Range{xmin, xmax}
	} else {
		x = Range{0, 1}
	}
	if spec.YRange != nil {
		y = *spec.YRange
	} else if ymin >= 0 && !math.IsInf(ymax, 0) && ymax > 0 {
		y = Range{0, ymax * 1.05}
	} else {
		lo, hi := PaddedRange(ymin, ymax)
		y = Range{lo, hi}
	}
	if y[1] <= y[0] {
		y[1] = y[0] + 1
	}
	if x[1] <= x[0] {
		x[1] = x[0] + 1
	}
	return x, y
}

// DrawPad renders spec onto the pad's rectangle.
func (s *Surface) DrawPad(p *layout.Pad, spec PadSpec) error {
	if p == nil {
		return ErrNoPad
	}
	defer logging.TimeTrack(time.Now(), "draw pad "+p.Name)
	rect := p.Rect(s.Canvas.Size)
	img, err := renderPad(p, rect.Dx(), rect.Dy(), spec)
	if err != nil {
		return fmt.Errorf("pad %s: %w", p.Name, err)
	}
	draw.Draw(s.img, rect, img, image.Point{}, draw.Over)
	return nil
}

func renderPad(p *layout.Pad, w, h int, spec PadSpec) (image.Image, error) {
	if len(spec.Series) == 0 {
		return nil, ErrEmptySeries
	}
	xr, yr := ResolveRanges(spec)
	nY := 6
	if spec.Format.YDivisions > 0 {
		nY = spec.Format.YDivisions + 1
	}

	series := make([]chart.Series, 0, len(spec.Series)+1)
	for _, bs := range spec.Series {
		series = append(series, bs)
	}
	if spec.RefLine != nil {
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor:     drawing.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{3, 3},
			},
			XValues: []float64{xr[0], xr[1]},
			YValues: []float64{*spec.RefLine, *spec.RefLine},
		})
	}

	fw, fh := float64(w), float64(h)
	bg := drawing.ColorWhite
	if p.Transparent {
		bg = drawing.Color{R: 255, G: 255, B: 255, A: 0}
	}
	ch := chart.Chart{
		Width:  w,
		Height: h,
		DPI:    72,
		Background: chart.Style{
			FillColor: bg,
			Padding: chart.Box{
				Top:    int(math.Round(p.Margins.Top * fh)),
				Left:   int(math.Round(p.Margins.Left * fw)),
				Right:  int(math.Round(p.Margins.Right * fw)),
				Bottom: int(math.Round(p.Margins.Bottom * fh)),
				IsSet:  true,
			},
		},
		Canvas: chart.Style{
			FillColor:   bg,
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: 1,
		},
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: xr[0], Max: xr[1]},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: yr[0], Max: yr[1]},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{
		axesRenderable(axes{
			format:      spec.Format,
			xmin:        xr[0],
			xmax:        xr[1],
			ymin:        yr[0],
			ymax:        yr[1],
			xticks:      NiceTicks(xr[0], xr[1], 8),
			yticks:      NiceTicks(yr[0], yr[1], nY),
			xtitle:      PlainText(spec.XTitle),
			ytitle:      PlainText(spec.YTitle),
			hideXLabels: spec.HideXLabels,
			padH:        h,
		}),
	}
	if spec.Legend != nil {
		ch.Elements = append(ch.Elements, legendRenderable(*spec.Legend, w, h))
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode pad image: %w", err)
	}
	return img, nil
}

// AnnotateTop writes text centred above the main pad frame.
func (s *Surface) AnnotateTop(text string) {
	if text == "" {
		return
	}
	p := s.Canvas.Main()
	fr := p.FrameRect(s.Canvas.Size)
	x := fr.Min.X + (fr.Dx()-TextWidth(text))/2
	y := fr.Min.Y - 18
	if y < 2 {
		y = 2
	}
	Annotate(s.img, text, x, y, color.Black)
}
