package plot

import (
	"fmt"
	"math"
	"time"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/logging"
	"github.com/nzipper/root-plotting/src/render"
)

// MultiHistPlot overlays N histograms colored from a palette.
type MultiHistPlot struct {
	Config Config
}

// NewMultiHistPlot returns a MultiHistPlot with the defaults updated by o.
func NewMultiHistPlot(o Overrides) (*MultiHistPlot, error) {
	p := &MultiHistPlot{Config: DefaultMultiConfig()}
	if err := p.Config.Apply(o); err != nil {
		return nil, err
	}
	return p, nil
}

// SetParams is the bulk update of the configuration.
func (p *MultiHistPlot) SetParams(o Overrides) error { return p.Config.Apply(o) }

// AutoYRange is [min of series minima, 1.1 × max of series maxima].
func AutoYRange(hs []*hist.Histogram) render.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range hs {
		lo = math.Min(lo, h.Min())
		hi = math.Max(hi, h.Max())
	}
	return render.Range{lo, 1.1 * hi}
}

// Plot draws every histogram, the first as the frame. With opt.Ratio the lower
// panel shows hs[0]/hs[i] for each i >= 1 in the color of series i.
func (p *MultiHistPlot) Plot(hs []*hist.Histogram, opt Options) (*Result, error) {
	if len(hs) == 0 || (opt.Ratio && len(hs) < 2) {
		return nil, fmt.Errorf("multi hist plot: %w: got %d", ErrNoSeries, len(hs))
	}
	if opt.Titles != nil && len(opt.Titles) != len(hs) {
		return nil, fmt.Errorf("%w: %d titles for %d series", ErrTitleCount, len(opt.Titles), len(hs))
	}
	for i, h := range hs {
		if h == nil {
			return nil, fmt.Errorf("multi hist plot: series %d: %w", i, hist.ErrNilInput)
		}
	}
	defer logging.TimeTrack(time.Now(), "multi hist plot")
	cfg := p.Config
	if len(cfg.Colors) == 0 {
		cfg.Colors = DefaultPalette
	}
	color := func(i int) string { return cfg.Colors[i%len(cfg.Colors)] }

	yrange := cfg.YRange
	if yrange == nil {
		r := AutoYRange(hs)
		yrange = &r
		logging.Debugf("auto y range [%g, %g]", r[0], r[1])
	}

	styledHs := make([]*hist.Histogram, len(hs))
	series := make([]render.BinSeries, len(hs))
	for i, h := range hs {
		c := h.Clone()
		if err := styled(c, nil, color(i)); err != nil {
			return nil, err
		}
		label := c.Title
		if opt.Titles != nil {
			label = opt.Titles[i]
		}
		s, err := render.FromHistogram(c, label)
		if err != nil {
			return nil, err
		}
		styledHs[i], series[i] = c, s
	}

	sc := scene{
		cfg:    cfg,
		titles: titlesFor(cfg, styledHs[0]),
		main:   series,
		yrange: yrange,
		split:  opt.Ratio,
	}
	var ratios []*hist.Histogram
	if opt.Ratio {
		for i := 1; i < len(styledHs); i++ {
			r, err := hist.Divide(styledHs[0], styledHs[i])
			if err != nil {
				return nil, err
			}
			if err := styled(r, nil, color(i)); err != nil {
				return nil, err
			}
			rs, err := render.FromHistogram(r, "")
			if err != nil {
				return nil, err
			}
			ratios = append(ratios, r)
			sc.ratios = append(sc.ratios, rs)
		}
	}

	res, err := drawScene(sc, opt.SavePath)
	if err != nil {
		return nil, err
	}
	if len(ratios) > 0 {
		res.Ratio = ratios[0]
		res.Ratios = ratios
	}
	return res, nil
}
