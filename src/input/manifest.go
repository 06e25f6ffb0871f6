package input

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nzipper/root-plotting/src/plot"
)

// ErrBadJob reports a manifest job that cannot be run.
var ErrBadJob = errors.New("invalid job")

// Job kinds.
const (
	KindEfficiency = "eff"
	KindHist       = "hist"
	KindMulti      = "multi"
)

// Job is one plot of a batch manifest.
type Job struct {
	Name          string         `toml:"name"`
	Kind          string         `toml:"kind"`
	Inputs        []string       `toml:"inputs"`
	Sheet         string         `toml:"sheet"`
	Titles        []string       `toml:"titles"`
	Out           string         `toml:"out"`
	Ratio         bool           `toml:"ratio"`
	Integral      bool           `toml:"integral"`
	IntegralRange []float64      `toml:"integral_range"`
	Config        plot.Overrides `toml:"config"`
}

// Manifest is a batch of independent plot jobs.
type Manifest struct {
	Workers *int  `toml:"workers"`
	Jobs    []Job `toml:"job"`
}

// LoadManifest decodes a TOML manifest. Relative input and output paths are
// resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrBadJob, undec[0].String(), path)
	}
	dir := filepath.Dir(path)
	for i := range m.Jobs {
		j := &m.Jobs[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("job%d", i+1)
		}
		if err := j.Validate(); err != nil {
			return nil, err
		}
		for k, in := range j.Inputs {
			j.Inputs[k] = resolve(dir, in)
		}
		j.Out = resolve(dir, j.Out)
	}
	return &m, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks the job's kind against its inputs and options.
func (j *Job) Validate() error {
	fail := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s: %s", ErrBadJob, j.Name, fmt.Sprintf(format, args...))
	}
	switch j.Kind {
	case KindEfficiency, KindHist:
		if len(j.Inputs) != 2 {
			return fail("%s needs 2 inputs, got %d", j.Kind, len(j.Inputs))
		}
		if len(j.Titles) > 2 {
			return fail("%d titles for 2 inputs", len(j.Titles))
		}
	case KindMulti:
		if len(j.Inputs) == 0 {
			return fail("no inputs")
		}
	default:
		return fail("unknown kind %q", j.Kind)
	}
	if j.Out == "" {
		return fail("no output path")
	}
	if j.IntegralRange != nil && len(j.IntegralRange) != 2 {
		return fail("integral_range needs 2 values")
	}
	return nil
}

// Options converts the job's per-call settings.
func (j *Job) Options() plot.Options {
	o := plot.Options{Ratio: j.Ratio, SavePath: j.Out, AddIntegral: j.Integral}
	switch j.Kind {
	case KindMulti:
		if len(j.Titles) > 0 {
			o.Titles = j.Titles
		}
	default:
		if len(j.Titles) > 0 {
			o.TitleA = j.Titles[0]
		}
		if len(j.Titles) > 1 {
			o.TitleB = j.Titles[1]
		}
	}
	if len(j.IntegralRange) == 2 {
		o.IntegralRange = &[2]float64{j.IntegralRange[0], j.IntegralRange[1]}
	}
	return o
}
