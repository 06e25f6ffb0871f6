package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// NiceTicks returns up to about n ticks covering [min,max] with steps from the
// 1, 2, 2.5, 5 × 10^k family. Ticks outside [min,max] are dropped so the axis
// range set by the caller is never widened.
func NiceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Floor(span/step) + 1
		if count < 2 {
			continue
		}
		if diff := math.Abs(count - float64(n)); diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Ceil(min/bestStep-1e-9) * bestStep
	var out []chart.Tick
	for v := start; v <= max+bestStep*1e-9; v += bestStep {
		v = round6(v)
		out = append(out, chart.Tick{Value: v, Label: FormatTick(v)})
	}
	if len(out) < 2 {
		out = []chart.Tick{{Value: min, Label: FormatTick(min)}, {Value: max, Label: FormatTick(max)}}
	}
	return out
}

// FormatTick renders a compact axis label.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case av >= 0.01:
		return strconv.FormatFloat(round6(v), 'f', -1, 64)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}

// round6 rounds to 6 decimal places to keep float steps from printing 0.30000000000000004.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// PaddedRange widens [min,max] by a 5% margin on each side, the way an
// unconfigured axis leaves room around its data.
func PaddedRange(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, 1
	}
	if max <= min {
		if min == 0 {
			return 0, 1
		}
		pad := math.Abs(min) * 0.5
		return min - pad, max + pad
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}
