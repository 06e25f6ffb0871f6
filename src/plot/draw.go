package plot

import (
	"fmt"
	"image"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/layout"
	"github.com/nzipper/root-plotting/src/logging"
	"github.com/nzipper/root-plotting/src/render"
	"github.com/nzipper/root-plotting/src/style"
)

// Result is what a plot call produced.
type Result struct {
	Canvas *layout.Canvas
	Image  *image.RGBA
	// Ratio is the ratio series of the lower panel, nil without one. For an
	// N-series plot it is series[0]/series[1]; Ratios has them all.
	Ratio     *hist.Histogram
	Ratios    []*hist.Histogram
	Entries   []render.LegendEntry
	Integrals []hist.Integral
	Path      string // file written, empty when not saved
}

// scene is what the orchestrators hand to the drawing step.
type scene struct {
	cfg    Config
	titles render.Titles
	main   []render.BinSeries
	ratios []render.BinSeries
	yrange *render.Range
	split  bool
}

func legendFor(cfg Config, panel style.Panel, entries []render.LegendEntry) (*render.Legend, error) {
	box, err := layout.LegendBox(cfg.LegPos, panel, cfg.LegScale)
	if err != nil {
		return nil, err
	}
	size := layout.LegendTextSize(panel)
	if cfg.LegTextSize != nil {
		size = *cfg.LegTextSize
	}
	return &render.Legend{Box: box, TextSize: size, Entries: entries}, nil
}

// drawScene lays out the canvas, draws the main series with the legend on top
// and, for a split canvas, the ratio series with a reference line at 1.
func drawScene(sc scene, savePath string) (*Result, error) {
	kind := layout.Single
	mainPanel := style.PanelFull
	if sc.split {
		kind = layout.Split
		mainPanel = style.PanelUpper
	}
	canvas, err := layout.Build(kind, sc.cfg.CanvasSize)
	if err != nil {
		return nil, err
	}
	format, err := style.ResolveAxis(mainPanel, sc.cfg.TextSize)
	if err != nil {
		return nil, err
	}
	entries := render.EntriesFor(sc.main)
	leg, err := legendFor(sc.cfg, mainPanel, entries)
	if err != nil {
		return nil, err
	}

	surface := render.NewSurface(canvas)
	mainSpec := render.PadSpec{
		Format:      format,
		XTitle:      sc.titles.X,
		YTitle:      sc.titles.Y,
		XRange:      sc.cfg.XRange,
		YRange:      sc.yrange,
		Series:      sc.main,
		Legend:      leg,
		HideXLabels: sc.split,
	}
	if err := surface.DrawPad(canvas.Main(), mainSpec); err != nil {
		return nil, err
	}

	if sc.split {
		lower, err := style.ResolveAxis(style.PanelLower, sc.cfg.TextSize)
		if err != nil {
			return nil, err
		}
		one := 1.0
		rr := sc.cfg.RRange
		ratioSpec := render.PadSpec{
			Format:  lower,
			XTitle:  sc.titles.X,
			YTitle:  lower.YTitle,
			XRange:  sc.cfg.XRange,
			YRange:  &rr,
			Series:  sc.ratios,
			RefLine: &one,
		}
		if ratioSpec.XRange == nil {
			// share the main panel's x range so the axes line up
			x, _ := render.ResolveRanges(mainSpec)
			ratioSpec.XRange = &x
		}
		if err := surface.DrawPad(canvas.RatioPad(), ratioSpec); err != nil {
			return nil, err
		}
	}
	surface.AnnotateTop(render.PlainText(sc.titles.Title))

	res := &Result{Canvas: canvas, Image: surface.Image(), Entries: entries}
	if savePath != "" {
		if err := surface.SaveAs(savePath); err != nil {
			return nil, fmt.Errorf("save %s: %w", savePath, err)
		}
		res.Path = savePath
		logging.Infof("saved %s", savePath)
	}
	return res, nil
}

// styled applies the default entry style with the given line color to target.
func styled(target style.Target, title *string, lineColor string) error {
	return style.FormatEntry(target, title, style.DefaultEntry().WithLineColor(lineColor))
}

// pick returns override when set, else fallback.
func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// titlesFor merges the configured title string with a series' own axis titles.
func titlesFor(cfg Config, h *hist.Histogram) render.Titles {
	t := render.SplitTitles(cfg.Title)
	if h != nil {
		t.X = pick(t.X, h.XTitle)
		t.Y = pick(t.Y, h.YTitle)
	}
	return t
}
