package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPanel reports a panel option outside full/upper/lower.
var ErrUnknownPanel = errors.New("unknown panel option")

// Panel selects which layout slot a formatting call targets.
type Panel int

const (
	PanelFull  Panel = iota // single full-size pad
	PanelUpper              // main pad of a split layout
	PanelLower              // ratio pad of a split layout
)

func (p Panel) String() string {
	switch p {
	case PanelFull:
		return "full"
	case PanelUpper:
		return "upper"
	case PanelLower:
		return "lower"
	}
	return fmt.Sprintf("Panel(%d)", int(p))
}

// ParsePanel accepts the layout names (full, upper, lower) and the older
// per-plot aliases (hist, eff, ratio).
func ParsePanel(s string) (Panel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "hist":
		return PanelFull, nil
	case "upper", "eff":
		return PanelUpper, nil
	case "lower", "ratio":
		return PanelLower, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPanel, s)
}

// PadSize is the vertical fraction of the canvas a panel occupies. Text sizes
// are divided by it so text keeps the same on-screen size in smaller pads.
func (p Panel) PadSize() float64 {
	switch p {
	case PanelUpper:
		return 0.7
	case PanelLower:
		return 0.25
	}
	return 1
}

// offsetKind is the title offset row used by a panel.
func (p Panel) offsetKind() string {
	switch p {
	case PanelUpper:
		return "eff"
	case PanelLower:
		return "ratio"
	}
	return "hist"
}

var titleSizes = map[string]float64{
	"small": .02,
	"med":   .04,
	"large": .05,
}

var labelSizes = map[string]float64{
	"small": .025,
	"med":   .04,
	"large": .07,
}

type xy struct{ x, y float64 }

// Empirically tuned; reproduce as is.
var titleOffsets = map[string]map[string]xy{
	"hist": {
		"small": {1.5, 1.5},
		"med":   {1.6, 1.8},
		"large": {1.5, 1.5},
	},
	"eff": {
		"small": {1.2, 1.2},
		"med":   {1.2, 1.1},
		"large": {1.2, 1},
	},
	"ratio": {
		"small": {1.5, .5},
		"med":   {1.2, .4},
		"large": {1.2, .35},
	},
}

const (
	LabelOffset    = .008
	RatioDivisions = 4
	RatioYTitle    = "Ratio"
)

// TitleSize returns the axis title size for a tier before pad scaling.
func TitleSize(tier string) (float64, error) {
	v, ok := titleSizes[tier]
	if !ok {
		return 0, &LookupError{Table: "text size", Token: tier}
	}
	return v, nil
}

// LabelSize returns the axis label size for a tier before pad scaling.
func LabelSize(tier string) (float64, error) {
	v, ok := labelSizes[tier]
	if !ok {
		return 0, &LookupError{Table: "text size", Token: tier}
	}
	return v, nil
}

// TitleOffset returns the (x, y) title offset multipliers for a panel and tier.
func TitleOffset(p Panel, tier string) (x, y float64, err error) {
	v, ok := titleOffsets[p.offsetKind()][tier]
	if !ok {
		return 0, 0, &LookupError{Table: "text size", Token: tier}
	}
	return v.x, v.y, nil
}

// AxisFormat holds the resolved axis text attributes of one panel. Sizes are
// fractions of the pad height, already divided by the pad size.
type AxisFormat struct {
	Panel        Panel
	LabelSize    float64
	TitleSize    float64
	LabelOffset  float64
	XTitleOffset float64
	YTitleOffset float64
	YDivisions   int // 0 leaves the choice to the renderer
	YTitle       string
}

// ResolveAxis builds the axis format for a panel and text size tier.
func ResolveAxis(p Panel, tier string) (AxisFormat, error) {
	ls, err := LabelSize(tier)
	if err != nil {
		return AxisFormat{}, err
	}
	ts, err := TitleSize(tier)
	if err != nil {
		return AxisFormat{}, err
	}
	ox, oy, err := TitleOffset(p, tier)
	if err != nil {
		return AxisFormat{}, err
	}
	f := AxisFormat{
		Panel:        p,
		LabelSize:    ls / p.PadSize(),
		TitleSize:    ts / p.PadSize(),
		LabelOffset:  LabelOffset,
		XTitleOffset: ox,
		YTitleOffset: oy,
	}
	if p == PanelLower {
		f.YDivisions = RatioDivisions
		f.YTitle = RatioYTitle
	}
	return f, nil
}
