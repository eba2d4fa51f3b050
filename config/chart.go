package config

import (
	"fmt"

	"github.com/midbel/tabcharts"
	"github.com/midbel/tabcharts/dataset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Chart struct {
	Id      string `toml:"id"`
	Kind    string `toml:"kind"`
	Dataset string `toml:"dataset"`
	Output  string `toml:"output"`

	Key     string `toml:"key"`
	Outer   string `toml:"outer"`
	Inner   string `toml:"inner"`
	Value   string `toml:"value"`
	Reducer string `toml:"reducer"`
	X       string `toml:"x"`
	Y       string `toml:"y"`

	Padding *float64 `toml:"padding"`
	Radius  float64  `toml:"radius"`
	Fill    string   `toml:"fill"`
	Colors  string   `toml:"colors"`
	XLabel  string   `toml:"x_label"`
	YLabel  string   `toml:"y_label"`

	Size Options `toml:"size"`
}

func (c Chart) Options(global Options) charts.Options {
	opts := global.Apply(charts.DefaultOptions())
	return c.Size.Apply(opts)
}

// Check verifies that the fields used by the chart exist in schema with the
// expected kind.
func (c Chart) Check(schema dataset.Schema) error {
	type field struct {
		name string
		kind charts.Kind
	}
	var list []field
	switch c.Kind {
	case KindBar:
		list = []field{{c.Key, charts.KindNone}, {c.Value, charts.KindNumber}}
	case KindScatter:
		list = []field{{c.X, charts.KindNumber}, {c.Y, charts.KindNumber}}
	case KindHeatmap:
		list = []field{{c.Outer, charts.KindNone}, {c.Inner, charts.KindNone}, {c.Value, charts.KindNumber}}
	default:
		return fmt.Errorf("%q: unknown chart kind", c.Kind)
	}
	for _, f := range list {
		if f.name == "" {
			return fmt.Errorf("%s chart: missing field", c.Kind)
		}
		if err := schema.Check(f.name, f.kind); err != nil {
			return err
		}
	}
	_, err := c.Renderer()
	return err
}

func (c Chart) Renderer() (charts.Renderer, error) {
	padding := charts.DefaultPadding
	if c.Padding != nil {
		padding = *c.Padding
	}
	switch c.Kind {
	case KindBar:
		red, err := charts.ParseReducer(c.Reducer)
		if err != nil {
			return nil, err
		}
		return charts.Bar{
			Key:     c.Key,
			Value:   c.Value,
			Reducer: red,
			Padding: padding,
			Fill:    charts.PaletteByName(c.Fill),
			XLabel:  labelOr(c.XLabel, c.Key),
			YLabel:  labelOr(c.YLabel, c.Value),
		}, nil
	case KindScatter:
		return charts.Scatter{
			X:      c.X,
			Y:      c.Y,
			Radius: c.Radius,
			Fill:   c.Fill,
			XLabel: labelOr(c.XLabel, c.X),
			YLabel: labelOr(c.YLabel, c.Y),
		}, nil
	case KindHeatmap:
		red, err := charts.ParseReducer(c.Reducer)
		if err != nil {
			return nil, err
		}
		interp, ok := charts.InterpolatorByName(c.Colors)
		if !ok {
			return nil, fmt.Errorf("%s: unknown color interpolator", c.Colors)
		}
		return charts.Heatmap{
			Outer:   c.Outer,
			Inner:   c.Inner,
			Value:   c.Value,
			Reducer: red,
			Padding: padding,
			Colors:  interp,
			XLabel:  labelOr(c.XLabel, c.Outer),
			YLabel:  labelOr(c.YLabel, c.Inner),
		}, nil
	default:
		return nil, fmt.Errorf("%q: unknown chart kind", c.Kind)
	}
}

func labelOr(label, field string) string {
	if label != "" {
		return label
	}
	return cases.Title(language.English).String(field)
}
