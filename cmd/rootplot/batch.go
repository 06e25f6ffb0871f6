package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/input"
	"github.com/nzipper/root-plotting/src/logging"
	"github.com/nzipper/root-plotting/src/plot"
)

// runBatch renders jobs with at most workers in flight. Results keep the job
// order; the first failure cancels jobs that have not started.
func runBatch(ctx context.Context, jobs []input.Job, cfg *input.FileConfig, workers int) ([]*plot.Result, error) {
	defer logging.TimeTrack(time.Now(), fmt.Sprintf("batch of %d jobs", len(jobs)))
	if workers < 1 {
		workers = 1
	}
	results := make([]*plot.Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		i, job := i, jobs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runJob(job, cfg)
			if err != nil {
				return fmt.Errorf("job %s: %w", job.Name, err)
			}
			logging.Infof("job %s done", job.Name)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runJob builds its own orchestrator: file config first, then the job's overrides.
func runJob(job input.Job, cfg *input.FileConfig) (*plot.Result, error) {
	switch job.Kind {
	case input.KindEfficiency:
		a, err := input.LoadEfficiency(job.Inputs[0], job.Sheet)
		if err != nil {
			return nil, err
		}
		b, err := input.LoadEfficiency(job.Inputs[1], job.Sheet)
		if err != nil {
			return nil, err
		}
		p, err := plot.NewEfficiencyPlot(cfg.Efficiency)
		if err != nil {
			return nil, err
		}
		if err := p.SetParams(job.Config); err != nil {
			return nil, err
		}
		return p.Plot(a, b, job.Options())
	case input.KindHist:
		hs, err := loadHistograms(job)
		if err != nil {
			return nil, err
		}
		p, err := plot.NewHistPlot(cfg.Hist)
		if err != nil {
			return nil, err
		}
		if err := p.SetParams(job.Config); err != nil {
			return nil, err
		}
		return p.Plot(hs[0], hs[1], job.Options())
	case input.KindMulti:
		hs, err := loadHistograms(job)
		if err != nil {
			return nil, err
		}
		p, err := plot.NewMultiHistPlot(cfg.Multi)
		if err != nil {
			return nil, err
		}
		if err := p.SetParams(job.Config); err != nil {
			return nil, err
		}
		return p.Plot(hs, job.Options())
	}
	return nil, fmt.Errorf("%w: unknown kind %q", input.ErrBadJob, job.Kind)
}

func loadHistograms(job input.Job) ([]*hist.Histogram, error) {
	hs := make([]*hist.Histogram, 0, len(job.Inputs))
	for _, path := range job.Inputs {
		h, err := input.LoadHistogram(path, job.Sheet)
		if err != nil {
			return nil, err
		}
		hs = append(hs, h)
	}
	return hs, nil
}
