package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/tabcharts"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/charts.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Charts) != 4 {
		t.Fatalf("want 4 charts, got %d", len(cfg.Charts))
	}
	if got := cfg.Datasets["superstore"].Path; got != filepath.Join("testdata", "superstore.csv") {
		t.Errorf("dataset path not resolved: %s", got)
	}

	bar, _ := cfg.Chart("barChart")
	opts := bar.Options(cfg.Options)
	if opts.Width != 800 || opts.Height != charts.DefaultHeight || opts.Margins.Left != 60 || opts.Margins.Top != 20 {
		t.Errorf("unexpected bar options: %+v", opts)
	}
	rdr, err := bar.Renderer()
	if err != nil {
		t.Fatal(err)
	}
	b, ok := rdr.(charts.Bar)
	if !ok {
		t.Fatalf("want charts.Bar, got %T", rdr)
	}
	if b.Reducer != charts.Sum || b.Padding != charts.DefaultPadding || len(b.Fill) != 10 {
		t.Errorf("unexpected bar renderer: %+v", b)
	}
	if b.XLabel != "Category" || b.YLabel != "Sales" {
		t.Errorf("labels not derived from fields: %q %q", b.XLabel, b.YLabel)
	}

	hm, _ := cfg.Chart("heatmap")
	if opts := hm.Options(cfg.Options); opts.Height != 400 || opts.Width != 800 {
		t.Errorf("unexpected heatmap options: %+v", opts)
	}
	rdr, err = hm.Renderer()
	if err != nil {
		t.Fatal(err)
	}
	if h := rdr.(charts.Heatmap); h.Padding != 0.05 || h.XLabel != "Region" {
		t.Errorf("unexpected heatmap renderer: %+v", h)
	}

	ld, err := cfg.Datasets["scores"].Loader("scores")
	if err != nil {
		t.Fatal(err)
	}
	if ld.Comma != ';' || len(ld.Columns) != 2 || ld.Columns[1].Kind != charts.KindNumber {
		t.Errorf("unexpected loader: %+v", ld)
	}
}

func TestDecodeUnknownOption(t *testing.T) {
	_, err := Load("testdata/unknown.toml")
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "colour") {
		t.Errorf("error should name the unknown option: %s", err)
	}
}

func TestDecodeInvalid(t *testing.T) {
	data := []struct {
		Name  string
		Input string
	}{
		{
			Name:  "no chart",
			Input: `[datasets.s]
path = "s.csv"
preset = "students"`,
		},
		{
			Name: "unknown dataset",
			Input: `[[charts]]
id = "a"
kind = "bar"
dataset = "nope"`,
		},
		{
			Name: "unknown field",
			Input: `[datasets.s]
path = "s.csv"
preset = "students"
[[charts]]
id = "a"
kind = "bar"
dataset = "s"
key = "gender"
value = "sales"
reducer = "sum"`,
		},
		{
			Name: "text value",
			Input: `[datasets.s]
path = "s.csv"
preset = "students"
[[charts]]
id = "a"
kind = "bar"
dataset = "s"
key = "gender"
value = "lunch"
reducer = "sum"`,
		},
		{
			Name: "missing reducer",
			Input: `[datasets.s]
path = "s.csv"
preset = "students"
[[charts]]
id = "a"
kind = "heatmap"
dataset = "s"
outer = "gender"
inner = "race"
value = "math"`,
		},
		{
			Name: "unknown kind",
			Input: `[datasets.s]
path = "s.csv"
preset = "students"
[[charts]]
id = "a"
kind = "pie"
dataset = "s"`,
		},
		{
			Name: "no room",
			Input: `[options]
width = 50
[datasets.s]
path = "s.csv"
preset = "students"
[[charts]]
id = "a"
kind = "scatter"
dataset = "s"
x = "math"
y = "reading"`,
		},
	}
	for _, d := range data {
		if _, err := Decode(strings.NewReader(d.Input)); err == nil {
			t.Errorf("%s: expected error", d.Name)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"barChart", "scatterPlot", "heatmap"} {
		c, ok := cfg.Chart(id)
		if !ok {
			t.Errorf("%s: chart not found", id)
			continue
		}
		if _, err := c.Renderer(); err != nil {
			t.Errorf("%s: %s", id, err)
		}
	}
}
