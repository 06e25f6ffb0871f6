package style

import (
	"errors"
	"math"
	"testing"

	"github.com/nzipper/root-plotting/src/hist"
)

func TestTokenTables(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) (int, error)
		want map[string]int
	}{
		{"color", Color, map[string]int{
			"white": 0, "black": 1, "red": 2, "green": 3, "blue": 4,
			"cyan": 432, "gray": 920, "magenta": 616, "orange": 797,
		}},
		{"line style", LineStyle, map[string]int{"-": 1, "..": 2, "--": 9, "-.": 10}},
		{"line width", LineWidth, map[string]int{"thin": 1, "med": 2, "thick": 5}},
		{"marker style", MarkerStyle, map[string]int{
			"": 0, ".": 1, "+": 34, "x": 5, "o": 4, "*": 3, "^": 22, "star": 29,
		}},
		{"marker size", MarkerSize, map[string]int{
			"small": 1, "med": 2, "large": 3, "x-large": 4, "xx-large": 5,
		}},
	}
	for _, c := range cases {
		for tok, want := range c.want {
			got, err := c.fn(tok)
			if err != nil {
				t.Fatalf("%s %q: %v", c.name, tok, err)
			}
			if got != want {
				t.Errorf("%s %q = %d want %d", c.name, tok, got, want)
			}
		}
		_, err := c.fn("chartreuse")
		var le *LookupError
		if !errors.As(err, &le) || !errors.Is(err, ErrUnknownToken) {
			t.Errorf("%s: unknown token gave %v", c.name, err)
		}
		if le != nil && (le.Table != c.name || le.Token != "chartreuse") {
			t.Errorf("%s: lookup error fields %+v", c.name, le)
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	if _, err := Color("Black"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Black should not resolve: %v", err)
	}
}

func TestAxisSizesScaleWithPad(t *testing.T) {
	cases := []struct {
		panel     Panel
		tier      string
		label     float64
		title     float64
		ox, oy    float64
		divisions int
	}{
		{PanelFull, "small", .025, .02, 1.5, 1.5, 0},
		{PanelFull, "med", .04, .04, 1.6, 1.8, 0},
		{PanelUpper, "med", .04 / .7, .04 / .7, 1.2, 1.1, 0},
		{PanelUpper, "large", .07 / .7, .05 / .7, 1.2, 1, 0},
		{PanelLower, "small", .025 / .25, .02 / .25, 1.5, .5, 4},
		{PanelLower, "large", .07 / .25, .05 / .25, 1.2, .35, 4},
	}
	for _, c := range cases {
		f, err := ResolveAxis(c.panel, c.tier)
		if err != nil {
			t.Fatalf("%v/%s: %v", c.panel, c.tier, err)
		}
		if math.Abs(f.LabelSize-c.label) > 1e-12 || math.Abs(f.TitleSize-c.title) > 1e-12 {
			t.Errorf("%v/%s sizes label=%g title=%g", c.panel, c.tier, f.LabelSize, f.TitleSize)
		}
		if f.XTitleOffset != c.ox || f.YTitleOffset != c.oy {
			t.Errorf("%v/%s offsets %g,%g want %g,%g", c.panel, c.tier, f.XTitleOffset, f.YTitleOffset, c.ox, c.oy)
		}
		if f.YDivisions != c.divisions || f.LabelOffset != .008 {
			t.Errorf("%v/%s divisions=%d labelOffset=%g", c.panel, c.tier, f.YDivisions, f.LabelOffset)
		}
	}
	if _, err := ResolveAxis(PanelFull, "huge"); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("unknown tier: %v", err)
	}
}

func TestParsePanelAliases(t *testing.T) {
	for in, want := range map[string]Panel{
		"full": PanelFull, "hist": PanelFull,
		"upper": PanelUpper, "eff": PanelUpper,
		"lower": PanelLower, "Ratio": PanelLower,
	} {
		got, err := ParsePanel(in)
		if err != nil || got != want {
			t.Errorf("ParsePanel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePanel("side"); !errors.Is(err, ErrUnknownPanel) {
		t.Fatalf("expected ErrUnknownPanel, got %v", err)
	}
}

func TestFormatEntryAppliesAttributes(t *testing.T) {
	h, _ := hist.New("h", "old", 2, 0, 1)
	title := "new"
	tok := DefaultEntry().WithLineColor("orange")
	tok.LineStyle = "--"
	tok.LineWidth = "thick"
	tok.MarkerStyle = "star"
	tok.MarkerSize = "large"
	if err := FormatEntry(h, &title, tok); err != nil {
		t.Fatalf("FormatEntry: %v", err)
	}
	want := hist.Attributes{MarkerColor: 1, MarkerStyle: 29, MarkerSize: 3, LineColor: 797, LineStyle: 9, LineWidth: 5}
	if h.Attr != want || h.Title != "new" {
		t.Fatalf("attributes %+v title %q", h.Attr, h.Title)
	}
}

func TestFormatEntryLeavesTargetOnError(t *testing.T) {
	h, _ := hist.New("h", "keep", 2, 0, 1)
	_ = h.SetBin(0, 5, 1)
	before := h.Attr
	title := "lost"
	if err := FormatEntry(h, &title, DefaultEntry().WithLineColor("teal")); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected lookup failure, got %v", err)
	}
	if h.Attr != before || h.Title != "keep" || h.Content(0) != 5 {
		t.Fatalf("target changed on failure")
	}
}

func TestSeriesStyle(t *testing.T) {
	a, err := DefaultEntry().WithLineColor("blue").Resolve()
	if err != nil {
		t.Fatal(err)
	}
	a.LineStyle = 10
	s, err := SeriesStyle(a)
	if err != nil {
		t.Fatalf("SeriesStyle: %v", err)
	}
	if s.StrokeColor.B != 255 || s.StrokeColor.R != 0 || s.StrokeWidth != 2 {
		t.Fatalf("stroke %+v width %g", s.StrokeColor, s.StrokeWidth)
	}
	if len(s.StrokeDashArray) != 4 || s.Marker != ShapeNone {
		t.Fatalf("dash %v marker %v", s.StrokeDashArray, s.Marker)
	}
	a.LineColor = 5
	if _, err := SeriesStyle(a); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("unknown code accepted: %v", err)
	}
}

func TestEveryTokenHasDrawing(t *testing.T) {
	for _, c := range Colors() {
		code, _ := Color(c)
		if _, err := DrawingColor(code); err != nil {
			t.Errorf("color %q: %v", c, err)
		}
	}
	for tok, code := range markerStyleCodes {
		if _, err := Shape(code); err != nil {
			t.Errorf("marker %q: %v", tok, err)
		}
	}
	for tok, code := range lineStyleCodes {
		if _, err := DashArray(code); err != nil {
			t.Errorf("line style %q: %v", tok, err)
		}
	}
}
