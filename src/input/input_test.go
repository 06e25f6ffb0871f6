package input

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nzipper/root-plotting/src/hist"
	"github.com/nzipper/root-plotting/src/plot"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestJSONHistogramRoundTrip(t *testing.T) {
	h, _ := hist.NewWithEdges("pt", "leading jet", []float64{0, 10, 20, 50})
	h.XTitle = "p_{T} [GeV]"
	_ = h.SetBin(0, 4, 2)
	_ = h.SetBin(1, 9, 3)
	_ = h.SetBin(2, 1, 0.5)
	data, err := json.Marshal(DocFromHistogram(h))
	if err != nil {
		t.Fatal(err)
	}
	p := write(t, "h.json", string(data))
	got, err := LoadHistogram(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "leading jet" || got.XTitle != "p_{T} [GeV]" || !hist.SameBinning(got, h) {
		t.Fatalf("metadata lost: %+v", got)
	}
	for i := 0; i < h.Len(); i++ {
		if got.Content(i) != h.Content(i) || got.Error(i) != h.Error(i) {
			t.Fatalf("bin %d: %v±%v want %v±%v", i, got.Content(i), got.Error(i), h.Content(i), h.Error(i))
		}
	}
}

func TestJSONHistogramDefaultErrorsAndLengthCheck(t *testing.T) {
	p := write(t, "h.json", `{"title":"t","edges":[0,1,2],"contents":[4,9]}`)
	h, err := LoadHistogram(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if h.Error(0) != 2 || h.Error(1) != 3 || h.Name != "h" {
		t.Fatalf("errors %v %v name %q", h.Error(0), h.Error(1), h.Name)
	}
	p = write(t, "bad.json", `{"edges":[0,1,2],"contents":[4]}`)
	_, err = LoadHistogram(p, "")
	var le *LoadError
	if !errors.As(err, &le) || !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected LoadError wrapping ErrMalformed, got %v", err)
	}
}

func TestJSONEfficiency(t *testing.T) {
	p := write(t, "e.json", `{"title":"trigger",
		"passed":{"edges":[0,1,2,3],"contents":[10,20,30]},
		"total":{"edges":[0,1,2,3],"contents":[20,40,50]}}`)
	e, err := LoadEfficiency(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if e.Title != "trigger" || e.Len() != 3 {
		t.Fatalf("curve %q with %d bins", e.Title, e.Len())
	}
	if in := hist.Integrate(e, 0, 100); in.FormatError() != "6.45e-02" {
		t.Fatalf("integral %s", in)
	}
	p = write(t, "bad.json", `{"passed":{"edges":[0,1],"contents":[3]},"total":{"edges":[0,1],"contents":[2]}}`)
	if _, err := LoadEfficiency(p, ""); !errors.Is(err, hist.ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestCSVHistogram(t *testing.T) {
	p := write(t, "jets.csv", "low,high,content,error\n0,10,4,1.5\n10,20,9,3\n20,50,1,1\n\n")
	h, err := LoadHistogram(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 3 || h.XMax() != 50 || h.Content(1) != 9 || h.Error(0) != 1.5 || h.Title != "jets" {
		t.Fatalf("histogram %+v", h)
	}
	p = write(t, "noerr.csv", "# comment\nlow,high,content\n0,1,16\n")
	h, err = LoadHistogram(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if h.Error(0) != 4 {
		t.Fatalf("default error %v", h.Error(0))
	}
}

func TestCSVErrors(t *testing.T) {
	cases := map[string]string{
		"gap.csv":     "low,high,content\n0,1,1\n2,3,1\n",
		"missing.csv": "low,high\n0,1\n",
		"nan.csv":     "low,high,content\n0,1,abc\n",
		"empty.csv":   "low,high,content\n",
	}
	for name, content := range cases {
		_, err := LoadHistogram(write(t, name, content), "")
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
	_, err := LoadHistogram(write(t, "gap.csv", "low,high,content\n0,1,1\n2,3,1\n"), "")
	var le *LoadError
	if !errors.As(err, &le) || le.Row != 3 {
		t.Fatalf("expected row 3, got %v", err)
	}
	if _, err := LoadHistogram(write(t, "h.txt", ""), ""); !errors.Is(err, ErrUnsupportedInput) {
		t.Fatalf("expected ErrUnsupportedInput, got %v", err)
	}
}

func TestCSVEfficiency(t *testing.T) {
	p := write(t, "eff.csv", "low,high,passed,total\n0,1,10,20\n1,2,20,40\n2,3,30,50\n")
	e, err := LoadEfficiency(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := hist.Integrate(e, 0, 100); got.Efficiency != .5 {
		t.Fatalf("integral %s", got)
	}
}

func TestXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	rows := [][]interface{}{
		{"low", "high", "passed", "total"},
		{5, 10, 3, 4},
		{10, 20, 6, 8},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.NewSheet("hist"); err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("hist", "A1", "low")
	f.SetCellValue("hist", "B1", "high")
	f.SetCellValue("hist", "C1", "content")
	f.SetCellValue("hist", "A2", 0)
	f.SetCellValue("hist", "B2", 2.5)
	f.SetCellValue("hist", "C2", 7)
	p := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(p); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	e, err := LoadEfficiency(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if e.Len() != 2 || e.XMin() != 5 || e.XMax() != 20 {
		t.Fatalf("curve bins %d [%v,%v]", e.Len(), e.XMin(), e.XMax())
	}
	if pr, _ := e.Proportion(1); pr != .75 {
		t.Fatalf("proportion %v", pr)
	}
	h, err := LoadHistogram(p, "hist")
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 1 || h.Content(0) != 7 || h.XMax() != 2.5 {
		t.Fatalf("histogram %+v", h)
	}
	if _, err := LoadHistogram(p, "nope"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	p := write(t, "plot.yaml", `
workers: 2
efficiency:
  color1: red
  xrange: [0, 100]
  leg_scale: 0.5
hist:
  title: ";m [GeV];Events"
`)
	t.Setenv("ROOTPLOT_LOG_LEVEL", "debug")
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 2 || cfg.LogLevel != "debug" {
		t.Fatalf("workers %d level %q", cfg.Workers, cfg.LogLevel)
	}
	if cfg.Efficiency.Color1 == nil || *cfg.Efficiency.Color1 != "red" || cfg.Efficiency.Color2 != nil {
		t.Fatalf("efficiency overrides %+v", cfg.Efficiency)
	}
	if len(cfg.Efficiency.XRange) != 2 || cfg.Efficiency.XRange[1] != 100 {
		t.Fatalf("xrange %v", cfg.Efficiency.XRange)
	}
	ep, err := plot.NewEfficiencyPlot(cfg.Efficiency)
	if err != nil {
		t.Fatal(err)
	}
	if ep.Config.Color1 != "red" || ep.Config.Color2 != "orange" || *ep.Config.LegScale != .5 {
		t.Fatalf("merged config %+v", ep.Config)
	}
	if cfg.Hist.Title == nil || *cfg.Hist.Title != ";m [GeV];Events" {
		t.Fatalf("hist title %v", cfg.Hist.Title)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 4 || cfg.LogLevel != "warn" || cfg.Multi.Colors != nil {
		t.Fatalf("defaults %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadManifest(t *testing.T) {
	p := write(t, "jobs.toml", `
workers = 3

[[job]]
name = "trigger"
kind = "eff"
inputs = ["a.json", "/abs/b.json"]
titles = ["2023", "2024"]
out = "out/trigger.png"
ratio = true
integral = true
integral_range = [10.0, 40.0]

[job.config]
color2 = "blue"
xrange = [0.0, 60.0]

[[job]]
kind = "multi"
inputs = ["x.csv", "y.csv", "z.csv"]
out = "multi.png"
`)
	m, err := LoadManifest(p)
	if err != nil {
		t.Fatal(err)
	}
	if m.Workers == nil || *m.Workers != 3 || len(m.Jobs) != 2 {
		t.Fatalf("manifest %+v", m)
	}
	dir := filepath.Dir(p)
	j := m.Jobs[0]
	if j.Inputs[0] != filepath.Join(dir, "a.json") || j.Inputs[1] != "/abs/b.json" || j.Out != filepath.Join(dir, "out/trigger.png") {
		t.Fatalf("paths %v %q", j.Inputs, j.Out)
	}
	if j.Config.Color2 == nil || *j.Config.Color2 != "blue" || j.Config.Color1 != nil {
		t.Fatalf("config %+v", j.Config)
	}
	o := j.Options()
	if !o.Ratio || !o.AddIntegral || o.TitleA != "2023" || o.TitleB != "2024" || *o.IntegralRange != [2]float64{10, 40} {
		t.Fatalf("options %+v", o)
	}
	if m.Jobs[1].Name != "job2" || m.Jobs[1].Options().Titles != nil {
		t.Fatalf("second job %+v", m.Jobs[1])
	}
}

func TestLoadManifestRejectsBadJobs(t *testing.T) {
	cases := map[string]string{
		"kind.toml":    "[[job]]\nkind = \"pie\"\ninputs = [\"a\"]\nout = \"x.png\"\n",
		"inputs.toml":  "[[job]]\nkind = \"hist\"\ninputs = [\"a\"]\nout = \"x.png\"\n",
		"out.toml":     "[[job]]\nkind = \"multi\"\ninputs = [\"a\"]\n",
		"unknown.toml": "[[job]]\nkind = \"multi\"\ninputs = [\"a\"]\nout = \"x.png\"\ncolour = \"red\"\n",
	}
	for name, content := range cases {
		if _, err := LoadManifest(write(t, name, content)); !errors.Is(err, ErrBadJob) {
			t.Errorf("%s: expected ErrBadJob, got %v", name, err)
		}
	}
}

func TestCSVEfficiencyErrors(t *testing.T) {
	_, err := LoadEfficiency(write(t, "bad.csv", "low,high,passed,total\n0,1,1,2\n1,2,3,x\n"), "")
	var le *LoadError
	if !errors.As(err, &le) || le.Row != 3 || !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected malformed row 3, got %v", err)
	}
	_, err = LoadEfficiency(write(t, "over.csv", "low,high,passed,total\n0,1,5,2\n"), "")
	if !errors.As(err, &le) || !errors.Is(err, hist.ErrInconsistent) {
		t.Fatalf("expected LoadError wrapping ErrInconsistent, got %v", err)
	}
	if _, err := LoadEfficiency(write(t, "hist.csv", "low,high,content\n0,1,5\n"), ""); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected missing column error, got %v", err)
	}
}
