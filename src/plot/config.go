// Package plot holds the comparison plot orchestrators: two efficiency curves,
// two histograms, or N histograms, each optionally with a ratio panel below.
package plot

import (
	"errors"
	"fmt"

	"github.com/nzipper/root-plotting/src/layout"
	"github.com/nzipper/root-plotting/src/render"
)

var (
	// ErrTitleCount reports a legend title list whose length differs from the series count.
	ErrTitleCount = errors.New("title count does not match series count")
	// ErrBadOverride reports an override value of the wrong shape.
	ErrBadOverride = errors.New("invalid override")
	// ErrNoSeries reports a plot call with too few series.
	ErrNoSeries = errors.New("not enough series")
)

// Config is the parameter set of one orchestrator instance.
type Config struct {
	Color1 string
	Color2 string
	Colors []string // palette for N-series plots, cycled

	// Title is "title;x title;y title". Empty parts leave the series' own titles.
	Title      string
	CanvasSize layout.Size
	XRange     *render.Range
	YRange     *render.Range
	RRange     render.Range
	TextSize   string
	LegPos     string
	LegScale   *float64
	// LegTextSize overrides the panel's legend text size when set.
	LegTextSize *float64
}

// DefaultPalette is the N-series color cycle.
var DefaultPalette = []string{"black", "orange", "blue", "red", "green", "magenta", "cyan", "gray"}

// DefaultEfficiencyConfig is the EfficiencyPlot configuration before overrides.
func DefaultEfficiencyConfig() Config {
	return Config{
		Color1:     "black",
		Color2:     "orange",
		Colors:     append([]string(nil), DefaultPalette...),
		Title:      ";p_{T} [GeV];Efficiency",
		CanvasSize: layout.DefaultSize,
		XRange:     &render.Range{5, 50},
		YRange:     &render.Range{0, 1.1},
		RRange:     render.Range{.2, 3},
		TextSize:   "med",
		LegPos:     "upper_right",
	}
}

// DefaultHistConfig is the HistPlot configuration before overrides.
func DefaultHistConfig() Config {
	return Config{
		Color1:     "black",
		Color2:     "orange",
		Colors:     append([]string(nil), DefaultPalette...),
		Title:      ";p_{T} [GeV];Events",
		CanvasSize: layout.DefaultSize,
		RRange:     render.Range{.5, 2},
		TextSize:   "med",
		LegPos:     "upper_right",
	}
}

// DefaultMultiConfig is the MultiHistPlot configuration before overrides.
func DefaultMultiConfig() Config {
	return Config{
		Color1:     "black",
		Color2:     "orange",
		Colors:     append([]string(nil), DefaultPalette...),
		CanvasSize: layout.DefaultSize,
		RRange:     render.Range{.5, 2},
		TextSize:   "med",
		LegPos:     "upper_right",
	}
}

// Overrides is a partial Config. Nil fields are left alone by Apply. Ranges
// and sizes are slices so config files can spell them as plain lists.
type Overrides struct {
	Color1      *string   `mapstructure:"color1" toml:"color1"`
	Color2      *string   `mapstructure:"color2" toml:"color2"`
	Colors      []string  `mapstructure:"colors" toml:"colors"`
	Title       *string   `mapstructure:"title" toml:"title"`
	CanvasSize  []int     `mapstructure:"canvas_size" toml:"canvas_size"`
	XRange      []float64 `mapstructure:"xrange" toml:"xrange"`
	YRange      []float64 `mapstructure:"yrange" toml:"yrange"`
	RRange      []float64 `mapstructure:"rrange" toml:"rrange"`
	TextSize    *string   `mapstructure:"text_size" toml:"text_size"`
	LegPos      *string   `mapstructure:"leg_pos" toml:"leg_pos"`
	LegScale    *float64  `mapstructure:"leg_scale" toml:"leg_scale"`
	LegTextSize *float64  `mapstructure:"legtext_size" toml:"legtext_size"`
}

func toRange(name string, v []float64) (render.Range, error) {
	if len(v) != 2 {
		return render.Range{}, fmt.Errorf("%w: %s needs 2 values, got %d", ErrBadOverride, name, len(v))
	}
	if v[1] <= v[0] {
		return render.Range{}, fmt.Errorf("%w: %s [%g, %g] is empty", ErrBadOverride, name, v[0], v[1])
	}
	return render.Range{v[0], v[1]}, nil
}

// Apply merges the set fields of o into c. Either every field is applied or,
// on error, none is.
func (c *Config) Apply(o Overrides) error {
	next := *c
	if o.Color1 != nil {
		next.Color1 = *o.Color1
	}
	if o.Color2 != nil {
		next.Color2 = *o.Color2
	}
	if o.Colors != nil {
		if len(o.Colors) == 0 {
			return fmt.Errorf("%w: empty colors", ErrBadOverride)
		}
		next.Colors = append([]string(nil), o.Colors...)
	}
	if o.Title != nil {
		next.Title = *o.Title
	}
	if o.CanvasSize != nil {
		if len(o.CanvasSize) != 2 || o.CanvasSize[0] <= 0 || o.CanvasSize[1] <= 0 {
			return fmt.Errorf("%w: canvas_size %v", ErrBadOverride, o.CanvasSize)
		}
		next.CanvasSize = layout.Size{W: o.CanvasSize[0], H: o.CanvasSize[1]}
	}
	if o.XRange != nil {
		r, err := toRange("xrange", o.XRange)
		if err != nil {
			return err
		}
		next.XRange = &r
	}
	if o.YRange != nil {
		r, err := toRange("yrange", o.YRange)
		if err != nil {
			return err
		}
		next.YRange = &r
	}
	if o.RRange != nil {
		r, err := toRange("rrange", o.RRange)
		if err != nil {
			return err
		}
		next.RRange = r
	}
	if o.TextSize != nil {
		next.TextSize = *o.TextSize
	}
	if o.LegPos != nil {
		next.LegPos = *o.LegPos
	}
	if o.LegScale != nil {
		v := *o.LegScale
		next.LegScale = &v
	}
	if o.LegTextSize != nil {
		v := *o.LegTextSize
		next.LegTextSize = &v
	}
	*c = next
	return nil
}

// Options are the per-call plot parameters.
type Options struct {
	Ratio bool
	// TitleA and TitleB label the two series of a pair plot. Empty keeps the series title.
	TitleA, TitleB string
	// Titles label the series of an N-series plot; nil keeps the series titles.
	Titles        []string
	SavePath      string
	AddIntegral   bool
	IntegralRange *[2]float64
}
