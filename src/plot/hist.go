package plot

import (
	"fmt"
	"time"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/logging"
	"github.com/nzipper/root-plotting/src/render"
)

// HistPlot compares two histograms.
type HistPlot struct {
	Config Config
}

// NewHistPlot returns a HistPlot with the defaults updated by o.
func NewHistPlot(o Overrides) (*HistPlot, error) {
	p := &HistPlot{Config: DefaultHistConfig()}
	if err := p.Config.Apply(o); err != nil {
		return nil, err
	}
	return p, nil
}

// SetParams is the bulk update of the configuration.
func (p *HistPlot) SetParams(o Overrides) error { return p.Config.Apply(o) }

// Plot draws h1 and h2 with error bars and, with opt.Ratio, h1/h2 below.
func (p *HistPlot) Plot(h1, h2 *hist.Histogram, opt Options) (*Result, error) {
	if h1 == nil || h2 == nil {
		return nil, fmt.Errorf("hist plot: %w", hist.ErrNilInput)
	}
	defer logging.TimeTrack(time.Now(), "hist plot")
	cfg := p.Config

	a, b := h1.Clone(), h2.Clone()
	if err := styled(a, nil, cfg.Color1); err != nil {
		return nil, err
	}
	if err := styled(b, nil, cfg.Color2); err != nil {
		return nil, err
	}
	s1, err := render.FromHistogram(a, pick(opt.TitleA, a.Title))
	if err != nil {
		return nil, err
	}
	s2, err := render.FromHistogram(b, pick(opt.TitleB, b.Title))
	if err != nil {
		return nil, err
	}

	sc := scene{
		cfg:    cfg,
		titles: titlesFor(cfg, a),
		main:   []render.BinSeries{s1, s2},
		yrange: cfg.YRange,
		split:  opt.Ratio,
	}
	var ratio *hist.Histogram
	if opt.Ratio {
		ratio, err = hist.Divide(a, b)
		if err != nil {
			return nil, err
		}
		if err := styled(ratio, nil, "black"); err != nil {
			return nil, err
		}
		rs, err := render.FromHistogram(ratio, "")
		if err != nil {
			return nil, err
		}
		sc.ratios = []render.BinSeries{rs}
	}

	res, err := drawScene(sc, opt.SavePath)
	if err != nil {
		return nil, err
	}
	res.Ratio = ratio
	if ratio != nil {
		res.Ratios = []*hist.Histogram{ratio}
	}
	return res, nil
}
