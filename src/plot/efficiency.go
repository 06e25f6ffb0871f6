package plot

import (
	"fmt"
	"time"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/logging"
	"github.com/nzipper/root-plotting/src/render"
)

// EfficiencyPlot compares two efficiency curves.
type EfficiencyPlot struct {
	Config Config
}

// NewEfficiencyPlot returns an EfficiencyPlot with the defaults updated by o.
func NewEfficiencyPlot(o Overrides) (*EfficiencyPlot, error) {
	p := &EfficiencyPlot{Config: DefaultEfficiencyConfig()}
	if err := p.Config.Apply(o); err != nil {
		return nil, err
	}
	return p, nil
}

// SetParams is the bulk update of the configuration.
func (p *EfficiencyPlot) SetParams(o Overrides) error { return p.Config.Apply(o) }

// Plot draws a and b, colored Color1 and Color2, with an optional ratio panel
// of a/b below. The inputs are copied; their titles and styles are untouched.
func (p *EfficiencyPlot) Plot(a, b *hist.Efficiency, opt Options) (*Result, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("efficiency plot: %w", hist.ErrNilInput)
	}
	defer logging.TimeTrack(time.Now(), "efficiency plot")
	cfg := p.Config

	e1, err := hist.NewEfficiency(a.Passed(), a.Total())
	if err != nil {
		return nil, err
	}
	e2, err := hist.NewEfficiency(b.Passed(), b.Total())
	if err != nil {
		return nil, err
	}
	t1, t2 := pick(opt.TitleA, a.Title), pick(opt.TitleB, b.Title)
	if err := styled(e1, &t1, cfg.Color1); err != nil {
		return nil, err
	}
	if err := styled(e2, &t2, cfg.Color2); err != nil {
		return nil, err
	}

	label1, label2 := e1.Title, e2.Title
	var integrals []hist.Integral
	if opt.AddIntegral {
		floor, ceil := hist.DefaultIntegralRange(e1)
		if opt.IntegralRange != nil {
			floor, ceil = opt.IntegralRange[0], opt.IntegralRange[1]
		}
		i1 := hist.Integrate(e1, floor, ceil)
		i2 := hist.Integrate(e2, floor, ceil)
		logging.Debugf("integral [%g, %g]: %s; %s", floor, ceil, i1, i2)
		label1, label2 = i1.Label(label1), i2.Label(label2)
		integrals = []hist.Integral{i1, i2}
	}

	s1, err := render.FromEfficiency(e1, label1)
	if err != nil {
		return nil, err
	}
	s2, err := render.FromEfficiency(e2, label2)
	if err != nil {
		return nil, err
	}

	sc := scene{
		cfg:    cfg,
		titles: titlesFor(cfg, a.Passed()),
		main:   []render.BinSeries{s1, s2},
		yrange: cfg.YRange,
		split:  opt.Ratio,
	}

	var ratio *hist.Histogram
	if opt.Ratio {
		ratio, err = hist.Ratio(e1, e2)
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
	res.Integrals = integrals
	return res, nil
}
