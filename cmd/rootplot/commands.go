package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/input"
	"github.com/nzipper/root-plotting/src/plot"
)

// pairFlags are shared by the two-input plots.
type pairFlags struct {
	ratio  bool
	out    string
	titleA string
	titleB string
}

func (f *pairFlags) register(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().BoolVar(&f.ratio, "ratio", false, "add a ratio panel below the main plot")
	cmd.Flags().StringVarP(&f.out, "out", "o", defaultOut, "output file (.png, .jpg, .gif, .svg or .pdf)")
	cmd.Flags().StringVar(&f.titleA, "title-a", "", "legend label of the first input")
	cmd.Flags().StringVar(&f.titleB, "title-b", "", "legend label of the second input")
}

func (f *pairFlags) options() plot.Options {
	return plot.Options{Ratio: f.ratio, SavePath: f.out, TitleA: f.titleA, TitleB: f.titleB}
}

func rangeFlag(v []float64, name string) (*[2]float64, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != 2 || v[1] < v[0] {
		return nil, fmt.Errorf("--%s needs lo,hi with lo <= hi, got %v", name, v)
	}
	return &[2]float64{v[0], v[1]}, nil
}

func newEffCmd(a *app) *cobra.Command {
	var f pairFlags
	var integral bool
	var irange []float64
	cmd := &cobra.Command{
		Use:   "eff A B",
		Short: "Compare two efficiency curves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rangeFlag(irange, "integral-range")
			if err != nil {
				return err
			}
			opt := f.options()
			opt.AddIntegral = integral
			opt.IntegralRange = r
			e1, err := input.LoadEfficiency(args[0], a.sheet)
			if err != nil {
				return err
			}
			e2, err := input.LoadEfficiency(args[1], a.sheet)
			if err != nil {
				return err
			}
			p, err := plot.NewEfficiencyPlot(a.cfg.Efficiency)
			if err != nil {
				return fmt.Errorf("efficiency config: %w", err)
			}
			res, err := p.Plot(e1, e2, opt)
			if err != nil {
				return err
			}
			for i, in := range res.Integrals {
				fmt.Fprintf(a.out, "%s: %s\n", args[i], in)
			}
			return a.report(res)
		},
	}
	f.register(cmd, "efficiency.png")
	cmd.Flags().BoolVar(&integral, "integral", false, "append the integrated efficiency to the legend labels")
	cmd.Flags().Float64SliceVar(&irange, "integral-range", nil, "integration range lo,hi (default: first to last bin)")
	return cmd
}

func newHistCmd(a *app) *cobra.Command {
	var f pairFlags
	cmd := &cobra.Command{
		Use:   "hist A B",
		Short: "Compare two histograms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h1, err := input.LoadHistogram(args[0], a.sheet)
			if err != nil {
				return err
			}
			h2, err := input.LoadHistogram(args[1], a.sheet)
			if err != nil {
				return err
			}
			p, err := plot.NewHistPlot(a.cfg.Hist)
			if err != nil {
				return fmt.Errorf("hist config: %w", err)
			}
			res, err := p.Plot(h1, h2, f.options())
			if err != nil {
				return err
			}
			return a.report(res)
		},
	}
	f.register(cmd, "hist.png")
	return cmd
}

func newMultiCmd(a *app) *cobra.Command {
	var ratio bool
	var out string
	var titles []string
	cmd := &cobra.Command{
		Use:   "multi F...",
		Short: "Overlay several histograms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hs := make([]*hist.Histogram, 0, len(args))
			for _, path := range args {
				h, err := input.LoadHistogram(path, a.sheet)
				if err != nil {
					return err
				}
				hs = append(hs, h)
			}
			p, err := plot.NewMultiHistPlot(a.cfg.Multi)
			if err != nil {
				return fmt.Errorf("multi config: %w", err)
			}
			res, err := p.Plot(hs, plot.Options{Ratio: ratio, SavePath: out, Titles: titles})
			if err != nil {
				return err
			}
			return a.report(res)
		},
	}
	cmd.Flags().BoolVar(&ratio, "ratio", false, "add ratios to the first histogram below the main plot")
	cmd.Flags().StringVarP(&out, "out", "o", "multi.png", "output file (.png, .jpg, .gif, .svg or .pdf)")
	cmd.Flags().StringSliceVar(&titles, "titles", nil, "legend labels, one per input")
	return cmd
}

func newIntegrateCmd(a *app) *cobra.Command {
	var irange []float64
	cmd := &cobra.Command{
		Use:   "integrate F...",
		Short: "Print the integrated efficiency of each curve",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rangeFlag(irange, "range")
			if err != nil {
				return err
			}
			rows := make([]integralRow, 0, len(args))
			for _, path := range args {
				e, err := input.LoadEfficiency(path, a.sheet)
				if err != nil {
					return err
				}
				lo, hi := hist.DefaultIntegralRange(e)
				if r != nil {
					lo, hi = r[0], r[1]
				}
				rows = append(rows, integralRow{Name: path, Lo: lo, Hi: hi, Integral: hist.Integrate(e, lo, hi)})
			}
			fmt.Fprint(a.out, renderIntegrals(rows, isTerminal(a.out)))
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&irange, "range", nil, "integration range lo,hi (default: first to last bin)")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch manifest.toml",
		Short: "Render every job of a TOML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := input.LoadManifest(args[0])
			if err != nil {
				return err
			}
			n := a.cfg.Workers
			if m.Workers != nil {
				n = *m.Workers
			}
			if cmd.Flags().Changed("workers") {
				n = workers
			}
			results, err := runBatch(cmd.Context(), m.Jobs, a.cfg, n)
			if err != nil {
				return err
			}
			for _, res := range results {
				if err := a.report(res); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent jobs (default: manifest, then config)")
	return cmd
}

func (a *app) report(res *plot.Result) error {
	if res.Path == "" {
		return nil
	}
	_, err := fmt.Fprintf(a.out, "wrote %s\n", res.Path)
	return err
}
