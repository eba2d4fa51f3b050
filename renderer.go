package charts

import (
	"fmt"
	"math"
)

const (
	DefaultPadding = 0.1
	DefaultRadius  = 5.0
	DefaultBarFill = "steelblue"
	DefaultDotFill = "orange"
)

// Bar groups records by Key, reduces Value with Reducer and draws one
// rectangle per bucket.
type Bar struct {
	Key     string
	Value   string
	Reducer Reducer
	Padding float64
	Fill    Palette
	XLabel  string
	YLabel  string
}

func (r Bar) Render(records []Record, opts Options) ([]Primitive, error) {
	if r.Key == "" || r.Value == "" {
		return nil, fmt.Errorf("bar: key and value fields are required")
	}
	if len(r.Fill) == 0 {
		r.Fill = Palette{DefaultBarFill}
	}
	buckets, err := Aggregate(records, TextField(r.Key), NumberField(r.Value), r.Reducer)
	if err != nil {
		return nil, err
	}
	var (
		width  = opts.InnerWidth()
		height = opts.InnerHeight()
	)
	xscale, err := NewBandScale(buckets.Outer(), NewRange(0, width), r.Padding)
	if err != nil {
		return nil, err
	}
	yscale := NewLinearScale(0, buckets.Max(), NewRange(height, 0))

	list := make([]Primitive, 0, len(buckets)+4)
	for i, b := range buckets {
		x, w, err := xscale.Band(b.Outer)
		if err != nil {
			return nil, err
		}
		var (
			base = yscale.Range().F
			y    = yscale.Scale(b.Value)
		)
		list = append(list, Rect{
			X:      x,
			Y:      math.Min(y, base),
			Width:  w,
			Height: math.Abs(base - y),
			Fill:   r.Fill.At(i),
			Title:  b.Outer,
		})
	}
	list = append(list, bottomAxis(xscale, height), leftAxis(yscale))
	list = append(list, xLabel(r.XLabel, opts), yLabel(r.YLabel, opts))
	return list, nil
}

// Scatter draws one circle per record at the position given by the X and
// Y fields.
type Scatter struct {
	X      string
	Y      string
	Radius float64
	Fill   string
	XLabel string
	YLabel string
}

func (r Scatter) Render(records []Record, opts Options) ([]Primitive, error) {
	if r.X == "" || r.Y == "" {
		return nil, fmt.Errorf("scatter: x and y fields are required")
	}
	if r.Radius <= 0 {
		r.Radius = DefaultRadius
	}
	if r.Fill == "" {
		r.Fill = DefaultDotFill
	}
	xmin, xmax, ok, err := Extent(records, NumberField(r.X))
	if err != nil || !ok {
		return []Primitive{}, err
	}
	ymin, ymax, _, err := Extent(records, NumberField(r.Y))
	if err != nil {
		return nil, err
	}
	var (
		height = opts.InnerHeight()
		xscale = NewLinearScale(xmin, xmax, NewRange(0, opts.InnerWidth()))
		yscale = NewLinearScale(ymin, ymax, NewRange(height, 0))
		list   = make([]Primitive, 0, len(records)+4)
	)
	for _, rec := range records {
		x, err := rec.Number(r.X)
		if err != nil {
			return nil, err
		}
		y, err := rec.Number(r.Y)
		if err != nil {
			return nil, err
		}
		list = append(list, Circle{
			CX:   xscale.Scale(x),
			CY:   yscale.Scale(y),
			R:    r.Radius,
			Fill: r.Fill,
		})
	}
	list = append(list, bottomAxis(xscale, height), leftAxis(yscale))
	list = append(list, xLabel(r.XLabel, opts), yLabel(r.YLabel, opts))
	return list, nil
}

// Heatmap groups records by the Outer and Inner fields and draws one cell
// per combination present in the data. Combinations never observed have
// no cell.
type Heatmap struct {
	Outer   string
	Inner   string
	Value   string
	Reducer Reducer
	Padding float64
	Colors  Interpolator
	XLabel  string
	YLabel  string
}

func (r Heatmap) Render(records []Record, opts Options) ([]Primitive, error) {
	if r.Outer == "" || r.Inner == "" || r.Value == "" {
		return nil, fmt.Errorf("heatmap: outer, inner and value fields are required")
	}
	var (
		outer = TextField(r.Outer)
		inner = TextField(r.Inner)
	)
	buckets, err := AggregatePair(records, outer, inner, NumberField(r.Value), r.Reducer)
	if err != nil {
		return nil, err
	}
	height := opts.InnerHeight()
	xscale, err := NewBandScale(Distinct(records, outer), NewRange(0, opts.InnerWidth()), r.Padding)
	if err != nil {
		return nil, err
	}
	yscale, err := NewBandScale(Distinct(records, inner), NewRange(height, 0), r.Padding)
	if err != nil {
		return nil, err
	}
	color := NewColorScale(buckets.Max(), r.Colors)

	list := make([]Primitive, 0, len(buckets)+4)
	for _, b := range buckets {
		x, w, err := xscale.Band(b.Outer)
		if err != nil {
			return nil, err
		}
		y, h, err := yscale.Band(b.Inner)
		if err != nil {
			return nil, err
		}
		list = append(list, Rect{
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
			Fill:   color.Color(b.Value),
			Title:  b.Key.String(),
		})
	}
	list = append(list, bottomAxis(xscale, height), leftAxis(yscale))
	list = append(list, xLabel(r.XLabel, opts), yLabel(r.YLabel, opts))
	return list, nil
}
