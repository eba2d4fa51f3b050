package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/midbel/tabcharts"
	"github.com/midbel/tabcharts/dataset"
)

const (
	KindBar     = "bar"
	KindScatter = "scatter"
	KindHeatmap = "heatmap"
)

var ErrConfig = errors.New("invalid configuration")

type Margins struct {
	Top    *float64 `toml:"top"`
	Right  *float64 `toml:"right"`
	Bottom *float64 `toml:"bottom"`
	Left   *float64 `toml:"left"`
}

type Options struct {
	Width   *float64 `toml:"width"`
	Height  *float64 `toml:"height"`
	Margins Margins  `toml:"margins"`
}

// Apply overrides the dimensions of base with the ones set in o.
func (o Options) Apply(base charts.Options) charts.Options {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.Width, o.Width)
	set(&base.Height, o.Height)
	set(&base.Margins.Top, o.Margins.Top)
	set(&base.Margins.Right, o.Margins.Right)
	set(&base.Margins.Bottom, o.Margins.Bottom)
	set(&base.Margins.Left, o.Margins.Left)
	return base
}

type Column struct {
	Field  string `toml:"field"`
	Header string `toml:"header"`
	Kind   string `toml:"kind"`
}

type Dataset struct {
	Path    string   `toml:"path"`
	Preset  string   `toml:"preset"`
	Comma   string   `toml:"comma"`
	Offset  int      `toml:"offset"`
	Count   int      `toml:"count"`
	Columns []Column `toml:"columns"`
}

func (d Dataset) Schema(name string) (dataset.Schema, error) {
	if d.Preset != "" {
		if len(d.Columns) > 0 {
			return dataset.Schema{}, fmt.Errorf("%s: preset and columns are mutually exclusive", name)
		}
		return dataset.Preset(d.Preset)
	}
	s := dataset.Schema{
		Name: name,
	}
	for _, c := range d.Columns {
		var col dataset.Column
		switch strings.ToLower(c.Kind) {
		case "number", "numeric", "float":
			col = dataset.NumberColumn(c.Field, c.Header)
		case "text", "string", "":
			col = dataset.TextColumn(c.Field, c.Header)
		default:
			return s, fmt.Errorf("%s: %s: unknown column kind %q", name, c.Field, c.Kind)
		}
		if col.Header == "" {
			col.Header = col.Field
		}
		s.Columns = append(s.Columns, col)
	}
	return s, s.Validate()
}

func (d Dataset) Loader(name string) (dataset.CSVLoader, error) {
	s, err := d.Schema(name)
	if err != nil {
		return dataset.CSVLoader{}, err
	}
	ld := dataset.NewLoader(s)
	if d.Comma != "" {
		rs := []rune(d.Comma)
		if len(rs) != 1 {
			return ld, fmt.Errorf("%s: comma should be a single character", name)
		}
		ld.Comma = rs[0]
	}
	ld.Limit = dataset.Limit{
		Offset: d.Offset,
		Count:  d.Count,
	}
	return ld, nil
}

type File struct {
	Options  Options            `toml:"options"`
	Datasets map[string]Dataset `toml:"datasets"`
	Charts   []Chart            `toml:"charts"`
}

// Default reproduces the three charts drawn over StudentsPerformance.csv.
func Default() File {
	return File{
		Datasets: map[string]Dataset{
			"students": {
				Path:   "StudentsPerformance.csv",
				Preset: dataset.Students.Name,
			},
		},
		Charts: []Chart{
			{
				Id:      "barChart",
				Kind:    KindBar,
				Dataset: "students",
				Key:     "gender",
				Value:   "math",
				Reducer: "mean",
				XLabel:  "Gender",
				YLabel:  "Average Math Score",
				Output:  "bar.svg",
			},
			{
				Id:      "scatterPlot",
				Kind:    KindScatter,
				Dataset: "students",
				X:       "math",
				Y:       "reading",
				XLabel:  "Math Score",
				YLabel:  "Reading Score",
				Output:  "scatter.svg",
			},
			{
				Id:      "heatmap",
				Kind:    KindHeatmap,
				Dataset: "students",
				Outer:   "gender",
				Inner:   "race",
				Value:   "writing",
				Reducer: "mean",
				XLabel:  "Gender",
				YLabel:  "Race/Ethnicity",
				Output:  "heatmap.svg",
			},
		},
	}
}

func Load(file string) (File, error) {
	r, err := os.Open(file)
	if err != nil {
		return File{}, err
	}
	defer r.Close()

	cfg, err := Decode(r)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	dir := filepath.Dir(file)
	for n, d := range cfg.Datasets {
		if d.Path != "" && !filepath.IsAbs(d.Path) && !strings.Contains(d.Path, "://") {
			d.Path = filepath.Join(dir, d.Path)
		}
		cfg.Datasets[n] = d
	}
	for i, c := range cfg.Charts {
		if c.Output != "" && !filepath.IsAbs(c.Output) {
			cfg.Charts[i].Output = filepath.Join(dir, c.Output)
		}
	}
	return cfg, nil
}

// Decode reads a configuration. Keys that are not recognized are reported
// as errors.
func Decode(r io.Reader) (File, error) {
	var cfg File
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		var list []string
		for _, k := range keys {
			list = append(list, k.String())
		}
		return cfg, fmt.Errorf("%w: unknown option(s) %s", ErrConfig, strings.Join(list, ", "))
	}
	return cfg, cfg.Validate()
}

func (f File) Validate() error {
	if len(f.Charts) == 0 {
		return fmt.Errorf("%w: no chart defined", ErrConfig)
	}
	seen := make(map[string]struct{})
	for _, c := range f.Charts {
		if c.Id == "" {
			return fmt.Errorf("%w: chart without id", ErrConfig)
		}
		if _, ok := seen[c.Id]; ok {
			return fmt.Errorf("%w: %s: duplicate chart id", ErrConfig, c.Id)
		}
		seen[c.Id] = struct{}{}

		d, ok := f.Datasets[c.Dataset]
		if !ok {
			return fmt.Errorf("%w: %s: dataset %q not defined", ErrConfig, c.Id, c.Dataset)
		}
		if d.Path == "" {
			return fmt.Errorf("%w: dataset %s: path not set", ErrConfig, c.Dataset)
		}
		schema, err := d.Schema(c.Dataset)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrConfig, err)
		}
		if err := c.Check(schema); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrConfig, c.Id, err)
		}
		if err := c.Options(f.Options).Validate(); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrConfig, c.Id, err)
		}
	}
	return nil
}

func (f File) Chart(id string) (Chart, bool) {
	for _, c := range f.Charts {
		if c.Id == id {
			return c, true
		}
	}
	return Chart{}, false
}
