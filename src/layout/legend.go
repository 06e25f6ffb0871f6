// Package layout computes where things go on a drawing surface: legend boxes
// from named positions, and the pads of single and split canvases.
//
// All coordinates are normalized to [0,1] with the origin at the bottom-left,
// as in the pad they refer to.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nzipper/root-plotting/src/style"
)

// ErrUnknownPosition reports a legend position name that is not in the table.
var ErrUnknownPosition = errors.New("unknown legend position")

// Box is a rectangle in normalized pad coordinates.
type Box struct {
	X1, Y1, X2, Y2 float64
}

func (b Box) Width() float64  { return b.X2 - b.X1 }
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

var legendBoxes = map[style.Panel]map[string]Box{
	style.PanelFull: {
		"upper_left":   {.16, .75, .79, .88},
		"upper_right":  {.16, .75, .89, .88},
		"center_left":  {.16, .43, .79, .56},
		"center_right": {.16, .43, .89, .56},
		"lower_left":   {.16, .17, .79, .3},
		"lower_right":  {.16, .17, .89, .3},
	},
	style.PanelUpper: {
		"upper_left":   {.16, .7, .79, .88},
		"upper_right":  {.16, .7, .89, .88},
		"center_left":  {.16, .4, .79, .55},
		"center_right": {.16, .4, .89, .55},
		"lower_left":   {.16, .03, .79, .2},
		"lower_right":  {.16, .03, .89, .2},
	},
	style.PanelLower: {
		"upper_left":   {.16, .77, .5, .98},
		"upper_right":  {.5, .77, .89, .98},
		"center_left":  {.16, .65, .5, .85},
		"center_right": {.5, .65, .89, .85},
		"lower_left":   {.16, .52, .5, .73},
		"lower_right":  {.5, .52, .89, .73},
	},
}

// Positions lists the legend position names in sorted order.
func Positions() []string {
	out := make([]string, 0, 6)
	for k := range legendBoxes[style.PanelFull] {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LegendBox returns the legend rectangle for a named position on a panel.
//
// With a scale, upper/lower right boxes keep their right edge and shrink x1
// toward it; upper/lower left boxes keep their left edge and shrink x2.
// center_* boxes are returned unscaled whatever the scale.
func LegendBox(position string, panel style.Panel, scale *float64) (Box, error) {
	boxes, ok := legendBoxes[panel]
	if !ok {
		return Box{}, fmt.Errorf("%w: panel %v", style.ErrUnknownPanel, panel)
	}
	b, ok := boxes[position]
	if !ok {
		return Box{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPosition, position, strings.Join(Positions(), ", "))
	}
	if scale == nil || strings.HasPrefix(position, "center") {
		return b, nil
	}
	s := *scale
	switch {
	case strings.Contains(position, "right"):
		b.X1 = b.X2 - s*(b.X2-b.X1)
	case strings.Contains(position, "left"):
		b.X2 = b.X1 + s*(b.X2-b.X1)
	}
	return b, nil
}

// LegendTextSize is the legend text size as a fraction of the pad height. The
// ratio pad is short, so its legend text is larger to stay legible.
func LegendTextSize(panel style.Panel) float64 {
	if panel == style.PanelLower {
		return .1
	}
	return .04
}
