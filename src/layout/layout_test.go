package layout

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/nzipper/root-plotting/src/style"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestLegendBoxTable(t *testing.T) {
	cases := []struct {
		panel style.Panel
		pos   string
		want  Box
	}{
		{style.PanelFull, "upper_right", Box{.16, .75, .89, .88}},
		{style.PanelFull, "lower_left", Box{.16, .17, .79, .3}},
		{style.PanelUpper, "center_left", Box{.16, .4, .79, .55}},
		{style.PanelUpper, "lower_right", Box{.16, .03, .89, .2}},
		{style.PanelLower, "upper_right", Box{.5, .77, .89, .98}},
		{style.PanelLower, "center_left", Box{.16, .65, .5, .85}},
	}
	for _, c := range cases {
		got, err := LegendBox(c.pos, c.panel, nil)
		if err != nil {
			t.Fatalf("%v/%s: %v", c.panel, c.pos, err)
		}
		if got != c.want {
			t.Errorf("%v/%s = %+v want %+v", c.panel, c.pos, got, c.want)
		}
	}
}

func TestLegendScaleRightAnchorsRightEdge(t *testing.T) {
	s := 0.5
	for _, panel := range []style.Panel{style.PanelFull, style.PanelUpper, style.PanelLower} {
		for _, pos := range []string{"upper_right", "lower_right"} {
			base, _ := LegendBox(pos, panel, nil)
			got, err := LegendBox(pos, panel, &s)
			if err != nil {
				t.Fatal(err)
			}
			if !approx(got.X1, base.X2-0.5*(base.X2-base.X1)) || got.X2 != base.X2 {
				t.Errorf("%v/%s scaled %+v from %+v", panel, pos, got, base)
			}
			if got.Y1 != base.Y1 || got.Y2 != base.Y2 {
				t.Errorf("%v/%s y changed", panel, pos)
			}
		}
	}
}

func TestLegendScaleLeftAnchorsLeftEdge(t *testing.T) {
	s := 0.5
	for _, pos := range []string{"upper_left", "lower_left"} {
		base, _ := LegendBox(pos, style.PanelFull, nil)
		got, _ := LegendBox(pos, style.PanelFull, &s)
		if !approx(got.X2, base.X1+0.5*(base.X2-base.X1)) || got.X1 != base.X1 {
			t.Errorf("%s scaled %+v from %+v", pos, got, base)
		}
	}
}

// Center boxes are never rescaled. This pins the current behaviour; changing it
// is a visible layout change for every plot using a center position.
func TestLegendScaleIgnoresCenter(t *testing.T) {
	for _, s := range []float64{0, 0.25, 0.5, 2} {
		s := s
		for _, pos := range []string{"center_left", "center_right"} {
			base, _ := LegendBox(pos, style.PanelUpper, nil)
			got, _ := LegendBox(pos, style.PanelUpper, &s)
			if got != base {
				t.Errorf("%s with scale %g changed: %+v vs %+v", pos, s, got, base)
			}
		}
	}
}

func TestLegendScaleDoesNotLeakIntoTable(t *testing.T) {
	s := 0.1
	_, _ = LegendBox("upper_right", style.PanelFull, &s)
	again, _ := LegendBox("upper_right", style.PanelFull, nil)
	if again != (Box{.16, .75, .89, .88}) {
		t.Fatalf("scaling mutated the table: %+v", again)
	}
}

func TestLegendUnknownPosition(t *testing.T) {
	if _, err := LegendBox("top", style.PanelFull, nil); !errors.Is(err, ErrUnknownPosition) {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
	if _, err := LegendBox("upper_left", style.Panel(9), nil); !errors.Is(err, style.ErrUnknownPanel) {
		t.Fatalf("expected ErrUnknownPanel, got %v", err)
	}
}

func TestLegendTextSize(t *testing.T) {
	if LegendTextSize(style.PanelFull) != .04 || LegendTextSize(style.PanelUpper) != .04 || LegendTextSize(style.PanelLower) != .1 {
		t.Fatalf("legend text sizes wrong")
	}
}

func TestSingleCanvas(t *testing.T) {
	c, err := NewSingle(DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Pads) != 1 || c.RatioPad() != nil {
		t.Fatalf("single canvas has %d pads", len(c.Pads))
	}
	p := c.Main()
	if p.Margins.Left != .15 || p.Margins.Bottom != .15 || p.Panel != style.PanelFull {
		t.Fatalf("margins %+v panel %v", p.Margins, p.Panel)
	}
	if p.Rect(c.Size) != image.Rect(0, 0, 800, 800) {
		t.Fatalf("rect %v", p.Rect(c.Size))
	}
	if fr := p.FrameRect(c.Size); fr != image.Rect(120, 80, 720, 680) {
		t.Fatalf("frame %v", fr)
	}
}

func TestSplitCanvas(t *testing.T) {
	c, top, bottom, err := NewSplit(Size{W: 800, H: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if c.Main() != top || c.RatioPad() != bottom || c.Kind != Split {
		t.Fatalf("pad wiring")
	}
	if top.Rect(c.Size) != image.Rect(0, 0, 800, 700) {
		t.Fatalf("top rect %v", top.Rect(c.Size))
	}
	if bottom.Rect(c.Size) != image.Rect(0, 700, 800, 950) {
		t.Fatalf("bottom rect %v", bottom.Rect(c.Size))
	}
	if top.Margins.Bottom != 0 || top.Margins.Left != .15 {
		t.Fatalf("top margins %+v", top.Margins)
	}
	if bottom.Margins.Top != 0 || bottom.Margins.Bottom != .5 || bottom.Margins.Left != .15 || !bottom.Transparent {
		t.Fatalf("bottom pad %+v", bottom)
	}
	// the main frame ends exactly where the ratio pad starts
	if top.FrameRect(c.Size).Max.Y != bottom.FrameRect(c.Size).Min.Y {
		t.Fatalf("frames do not join: %v %v", top.FrameRect(c.Size), bottom.FrameRect(c.Size))
	}
}

func TestBuildRejectsBadSize(t *testing.T) {
	for _, k := range []Kind{Single, Split} {
		if _, err := Build(k, Size{W: 0, H: 10}); !errors.Is(err, ErrCanvasSize) {
			t.Errorf("%v: expected ErrCanvasSize, got %v", k, err)
		}
	}
	c, err := Build(Split, DefaultSize)
	if err != nil || len(c.Pads) != 2 {
		t.Fatalf("Build(Split) = %v, %v", c, err)
	}
}
