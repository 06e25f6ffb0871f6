package style

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nzipper/root-plotting/src/hist"
)

// RGB values of the color codes, taken from the classic analysis palette.
var codeColors = map[int]drawing.Color{
	0:   {R: 255, G: 255, B: 255, A: 255},
	1:   {R: 0, G: 0, B: 0, A: 255},
	2:   {R: 255, G: 0, B: 0, A: 255},
	3:   {R: 0, G: 255, B: 0, A: 255},
	4:   {R: 0, G: 0, B: 255, A: 255},
	432: {R: 0, G: 255, B: 255, A: 255},
	920: {R: 204, G: 204, B: 204, A: 255},
	616: {R: 255, G: 0, B: 255, A: 255},
	797: {R: 229, G: 145, B: 0, A: 255},
}

// Dash patterns in pixels; nil is a solid line.
var codeDashes = map[int][]float64{
	1:  nil,
	2:  {3, 3},
	9:  {12, 6},
	10: {12, 6, 3, 6},
}

// DrawingColor converts a color code into an RGBA color.
func DrawingColor(code int) (drawing.Color, error) {
	c, ok := codeColors[code]
	if !ok {
		return drawing.Color{}, &LookupError{Table: "color", Token: fmt.Sprint(code)}
	}
	return c, nil
}

// DashArray converts a line style code into a dash pattern.
func DashArray(code int) ([]float64, error) {
	d, ok := codeDashes[code]
	if !ok {
		return nil, &LookupError{Table: "line style", Token: fmt.Sprint(code)}
	}
	return append([]float64(nil), d...), nil
}

// MarkerShape is the glyph a marker style code draws.
type MarkerShape int

const (
	ShapeNone MarkerShape = iota
	ShapePoint
	ShapeAsterisk
	ShapeOpenCircle
	ShapeCross
	ShapeTriangle
	ShapeStar
	ShapePlus
)

var codeShapes = map[int]MarkerShape{
	0:  ShapeNone,
	1:  ShapePoint,
	3:  ShapeAsterisk,
	4:  ShapeOpenCircle,
	5:  ShapeCross,
	22: ShapeTriangle,
	29: ShapeStar,
	34: ShapePlus,
}

// Shape converts a marker style code into a glyph.
func Shape(code int) (MarkerShape, error) {
	s, ok := codeShapes[code]
	if !ok {
		return ShapeNone, &LookupError{Table: "marker style", Token: fmt.Sprint(code)}
	}
	return s, nil
}

// MarkerRadius is the marker half-size in pixels for a marker size code.
func MarkerRadius(sizeCode int) float64 { return 3 * float64(sizeCode) }

// Series is the go-chart style of a series plus the marker glyph, which
// go-chart itself has no notion of.
type Series struct {
	chart.Style
	Marker       MarkerShape
	MarkerRadius float64
}

// SeriesStyle converts resolved attributes into drawing attributes.
func SeriesStyle(a hist.Attributes) (Series, error) {
	lc, err := DrawingColor(a.LineColor)
	if err != nil {
		return Series{}, err
	}
	mc, err := DrawingColor(a.MarkerColor)
	if err != nil {
		return Series{}, err
	}
	dash, err := DashArray(a.LineStyle)
	if err != nil {
		return Series{}, err
	}
	shape, err := Shape(a.MarkerStyle)
	if err != nil {
		return Series{}, err
	}
	return Series{
		Style: chart.Style{
			StrokeColor:     lc,
			StrokeWidth:     float64(a.LineWidth),
			StrokeDashArray: dash,
			DotColor:        mc,
		},
		Marker:       shape,
		MarkerRadius: MarkerRadius(a.MarkerSize),
	}, nil
}
