package layout

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/nzipper/root-plotting/src/style"
)

// ErrCanvasSize reports a non-positive canvas size.
var ErrCanvasSize = errors.New("invalid canvas size")

// Kind selects the canvas arrangement.
type Kind int

const (
	Single Kind = iota // one full-size pad
	Split              // main pad on top of a ratio pad
)

func (k Kind) String() string {
	if k == Split {
		return "split"
	}
	return "single"
}

// Size is a canvas size in pixels.
type Size struct {
	W, H int
}

// DefaultSize is the square canvas used by every plot unless configured otherwise.
var DefaultSize = Size{W: 800, H: 800}

const defaultMargin = 0.1

// Margins are fractions of the pad size.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Pad is a rectangular region of a canvas. Its Box is normalized to the
// canvas with y pointing up.
type Pad struct {
	Name        string
	Panel       style.Panel
	Box         Box
	Margins     Margins
	Transparent bool // frame not filled, no border
}

// Rect is the pad's pixel rectangle in image coordinates (y pointing down).
func (p *Pad) Rect(s Size) image.Rectangle {
	x0 := int(math.Round(p.Box.X1 * float64(s.W)))
	x1 := int(math.Round(p.Box.X2 * float64(s.W)))
	y0 := int(math.Round((1 - p.Box.Y2) * float64(s.H)))
	y1 := int(math.Round((1 - p.Box.Y1) * float64(s.H)))
	return image.Rect(x0, y0, x1, y1)
}

// FrameRect is the plotting frame inside the margins, in image coordinates.
func (p *Pad) FrameRect(s Size) image.Rectangle {
	r := p.Rect(s)
	w, h := float64(r.Dx()), float64(r.Dy())
	return image.Rect(
		r.Min.X+int(math.Round(p.Margins.Left*w)),
		r.Min.Y+int(math.Round(p.Margins.Top*h)),
		r.Max.X-int(math.Round(p.Margins.Right*w)),
		r.Max.Y-int(math.Round(p.Margins.Bottom*h)),
	)
}

// Canvas is the drawing surface geometry: a size and its pads in draw order.
type Canvas struct {
	Kind Kind
	Size Size
	Pads []*Pad
}

// Main is the pad the series are drawn on.
func (c *Canvas) Main() *Pad { return c.Pads[0] }

// RatioPad is the lower pad of a split canvas, nil for a single canvas.
func (c *Canvas) RatioPad() *Pad {
	if len(c.Pads) < 2 {
		return nil
	}
	return c.Pads[1]
}

func checkSize(s Size) error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrCanvasSize, s.W, s.H)
	}
	return nil
}

// NewSingle builds a canvas with one full-size pad, left and bottom margins 0.15.
func NewSingle(s Size) (*Canvas, error) {
	if err := checkSize(s); err != nil {
		return nil, err
	}
	return &Canvas{
		Kind: Single,
		Size: s,
		Pads: []*Pad{{
			Name:    "c",
			Panel:   style.PanelFull,
			Box:     Box{0, 0, 1, 1},
			Margins: Margins{Left: .15, Right: defaultMargin, Top: defaultMargin, Bottom: .15},
		}},
	}, nil
}

// NewSplit builds a canvas with a main pad over y∈[0.3,1] and a ratio pad over
// y∈[0.05,0.3]. The main pad has no bottom margin so its x axis meets the ratio
// pad; the ratio pad has no top margin, a 0.5 bottom margin for the axis labels
// and a transparent frame. The strip below 0.05 stays empty.
func NewSplit(s Size) (c *Canvas, top, bottom *Pad, err error) {
	if err := checkSize(s); err != nil {
		return nil, nil, nil, err
	}
	top = &Pad{
		Name:    "pad1",
		Panel:   style.PanelUpper,
		Box:     Box{0, .3, 1, 1},
		Margins: Margins{Left: .15, Right: defaultMargin, Top: defaultMargin, Bottom: 0},
	}
	bottom = &Pad{
		Name:        "pad2",
		Panel:       style.PanelLower,
		Box:         Box{0, .05, 1, .3},
		Margins:     Margins{Left: .15, Right: defaultMargin, Top: 0, Bottom: .5},
		Transparent: true,
	}
	return &Canvas{Kind: Split, Size: s, Pads: []*Pad{top, bottom}}, top, bottom, nil
}

// Build dispatches on kind.
func Build(k Kind, s Size) (*Canvas, error) {
	if k == Split {
		c, _, _, err := NewSplit(s)
		return c, err
	}
	return NewSingle(s)
}
