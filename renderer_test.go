package charts

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

func testOptions() Options {
	return Options{
		Width:  240,
		Height: 200,
		Margins: Margins{
			Top:    20,
			Right:  20,
			Bottom: 80,
			Left:   20,
		},
	}
}

func rects(list []Primitive) []Rect {
	var rs []Rect
	for _, p := range list {
		if r, ok := p.(Rect); ok {
			rs = append(rs, r)
		}
	}
	return rs
}

func TestBarRender(t *testing.T) {
	rs := sample(
		[3]any{"female", "", 60},
		[3]any{"male", "", 50},
		[3]any{"female", "", 80},
	)
	bar := Bar{
		Key:     "r",
		Value:   "v",
		Reducer: Mean,
		XLabel:  "Gender",
		YLabel:  "Average Math Score",
	}
	list, err := bar.Render(rs, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	bars := rects(list)
	if len(bars) != 2 {
		t.Fatalf("want 2 bars, got %d", len(bars))
	}
	// plot area is 200x100, max value is 70
	if bars[0].Title != "female" || bars[0].X != 0 || bars[0].Width != 100 {
		t.Errorf("unexpected first bar: %+v", bars[0])
	}
	if bars[0].Y != 0 || bars[0].Height != 100 {
		t.Errorf("highest bar should fill the plot height: %+v", bars[0])
	}
	if !almostEqual(bars[1].Height, 100*50/70.0) || !almostEqual(bars[1].Y+bars[1].Height, 100) {
		t.Errorf("bar not anchored on baseline: %+v", bars[1])
	}
	if bars[0].Fill != DefaultBarFill {
		t.Errorf("fill: want %s, got %s", DefaultBarFill, bars[0].Fill)
	}

	var (
		axes   []AxisRef
		labels []TextLabel
	)
	for _, p := range list {
		switch p := p.(type) {
		case AxisRef:
			axes = append(axes, p)
		case TextLabel:
			labels = append(labels, p)
		}
	}
	if len(axes) != 2 || axes[0].Orientation != OrientBottom || axes[1].Orientation != OrientLeft {
		t.Fatalf("unexpected axes: %+v", axes)
	}
	band, ok := axes[0].Scale.(BandScale)
	if !ok {
		t.Fatalf("bottom axis should use a band scale, got %T", axes[0].Scale)
	}
	if got := band.Domain(); !reflect.DeepEqual(got, []string{"female", "male"}) {
		t.Errorf("band domain: %v", got)
	}
	if axes[0].Offset != 100 {
		t.Errorf("bottom axis offset: want 100, got %g", axes[0].Offset)
	}
	if len(labels) != 2 || labels[0].Text != "Gender" || labels[1].Rotate != -90 {
		t.Errorf("unexpected labels: %+v", labels)
	}
}

func TestBarRenderPadding(t *testing.T) {
	rs := sample(
		[3]any{"A", "", 1},
		[3]any{"B", "", 2},
	)
	bar := Bar{
		Key:     "r",
		Value:   "v",
		Reducer: Sum,
		Padding: 0.1,
		Fill:    Tableau10,
	}
	list, err := bar.Render(rs, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	bars := rects(list)
	if !almostEqual(bars[0].X, 5) || !almostEqual(bars[0].Width, 90) {
		t.Errorf("padding not applied: %+v", bars[0])
	}
	if bars[0].Fill != Tableau10[0] || bars[1].Fill != Tableau10[1] {
		t.Errorf("palette not cycled: %s %s", bars[0].Fill, bars[1].Fill)
	}
}

func TestScatterRender(t *testing.T) {
	rs := []Record{
		NewRecord(map[string]Value{"math": Number(0), "reading": Number(10)}),
		NewRecord(map[string]Value{"math": Number(100), "reading": Number(20)}),
		NewRecord(map[string]Value{"math": Number(50), "reading": Number(15)}),
	}
	sc := Scatter{X: "math", Y: "reading"}
	list, err := sc.Render(rs, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	var dots []Circle
	for _, p := range list {
		if c, ok := p.(Circle); ok {
			dots = append(dots, c)
		}
	}
	if len(dots) != 3 {
		t.Fatalf("want 3 circles, got %d", len(dots))
	}
	want := []Circle{
		{CX: 0, CY: 100, R: DefaultRadius, Fill: DefaultDotFill},
		{CX: 200, CY: 0, R: DefaultRadius, Fill: DefaultDotFill},
		{CX: 100, CY: 50, R: DefaultRadius, Fill: DefaultDotFill},
	}
	if !reflect.DeepEqual(dots, want) {
		t.Errorf("circles mismatched: want %+v, got %+v", want, dots)
	}
}

func TestScatterRenderEmpty(t *testing.T) {
	list, err := Scatter{X: "math", Y: "reading"}.Render(nil, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(list) != 0 {
		t.Errorf("want no primitives, got %d", len(list))
	}
}

func TestHeatmapRender(t *testing.T) {
	rs := sample(
		[3]any{"X", "p", 10},
		[3]any{"X", "q", 20},
		[3]any{"Y", "p", 5},
	)
	hm := Heatmap{
		Outer:   "r",
		Inner:   "c",
		Value:   "v",
		Reducer: Sum,
	}
	list, err := hm.Render(rs, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	cells := rects(list)
	if len(cells) != 3 {
		t.Fatalf("want 3 cells, got %d", len(cells))
	}
	titles := make(map[string]Rect)
	for _, c := range cells {
		titles[c.Title] = c
	}
	for _, k := range []string{"X/p", "X/q", "Y/p"} {
		if _, ok := titles[k]; !ok {
			t.Errorf("%s: cell missing", k)
		}
	}
	if _, ok := titles["Y/q"]; ok {
		t.Errorf("Y/q: unexpected cell")
	}
	// plot area is 200x100: 2 columns of 100, 2 rows of 50, first row at the bottom
	xp := titles["X/p"]
	if xp.X != 0 || xp.Y != 50 || xp.Width != 100 || xp.Height != 50 {
		t.Errorf("X/p misplaced: %+v", xp)
	}
	xq := titles["X/q"]
	if xq.Y != 0 {
		t.Errorf("X/q misplaced: %+v", xq)
	}
	if xq.Fill != "#08306b" {
		t.Errorf("largest bucket should get the darkest color, got %s", xq.Fill)
	}

	axes := Frame{Primitives: list}.Axes()
	if len(axes) != 2 {
		t.Fatalf("want 2 axes, got %d", len(axes))
	}
	rows := axes[1].Scale.(BandScale).Domain()
	if !reflect.DeepEqual(rows, []string{"p", "q"}) {
		t.Errorf("row domain: %v", rows)
	}
}

func TestHeatmapDomainIncludesAllObserved(t *testing.T) {
	rs := sample(
		[3]any{"X", "p", 1},
		[3]any{"Y", "q", 1},
		[3]any{"Z", "r", 1},
	)
	list, err := Heatmap{Outer: "r", Inner: "c", Value: "v", Reducer: Mean}.Render(rs, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if n := len(rects(list)); n != 3 {
		t.Errorf("want 3 cells for a 3x3 grid, got %d", n)
	}
	axes := Frame{Primitives: list}.Axes()
	if d := axes[0].Scale.(BandScale).Domain(); len(d) != 3 {
		t.Errorf("columns: %v", d)
	}
	if d := axes[1].Scale.(BandScale).Domain(); len(d) != 3 {
		t.Errorf("rows: %v", d)
	}
}

type failLoader struct{}

func (failLoader) Load(context.Context, string) ([]Record, error) {
	return nil, errors.New("boom")
}

type sliceLoader []Record

func (s sliceLoader) Load(context.Context, string) ([]Record, error) {
	return s, nil
}

func TestChartNotLoaded(t *testing.T) {
	c := New("bar", testOptions())
	if err := c.Load(context.Background(), failLoader{}, "data.csv"); err == nil {
		t.Fatalf("expected load error")
	}
	var (
		canvas = NewCanvas()
		nerr   NotLoadedError
	)
	err := c.Render(canvas, Bar{Key: "r", Value: "v", Reducer: Sum})
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotLoadedError, got %v", err)
	}
	if !canvas.Empty() {
		t.Errorf("surface modified by failed render")
	}
}

func TestChartDuplicateRender(t *testing.T) {
	rs := sample(
		[3]any{"X", "p", 10},
		[3]any{"Y", "q", 20},
	)
	renderers := []Renderer{
		Bar{Key: "r", Value: "v", Reducer: Sum},
		Scatter{X: "v", Y: "v"},
		Heatmap{Outer: "r", Inner: "c", Value: "v", Reducer: Sum},
	}
	for _, rdr := range renderers {
		c := New("chart", testOptions())
		if err := c.Load(context.Background(), sliceLoader(rs), ""); err != nil {
			t.Fatal(err)
		}
		canvas := NewCanvas()
		if err := c.Render(canvas, rdr); err != nil {
			t.Fatalf("%T: first render failed: %s", rdr, err)
		}
		var derr DuplicateRenderError
		if err := c.Render(canvas, rdr); !errors.As(err, &derr) {
			t.Fatalf("%T: expected DuplicateRenderError, got %v", rdr, err)
		}
		if n := len(canvas.Frames()); n != 1 {
			t.Errorf("%T: want 1 frame, got %d", rdr, n)
		}
		canvas.Clear()
		if err := c.Render(canvas, rdr); err != nil {
			t.Errorf("%T: render after clear failed: %s", rdr, err)
		}
	}
}

func TestChartFailedRenderLeavesSurface(t *testing.T) {
	rs := sample(
		[3]any{"X", "p", "oops"},
	)
	c := New("bar", testOptions())
	c.SetRecords(rs)
	canvas := NewCanvas()
	var ierr InvalidValueError
	if err := c.Render(canvas, Bar{Key: "r", Value: "v", Reducer: Sum}); !errors.As(err, &ierr) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if !canvas.Empty() {
		t.Errorf("surface modified by failed render")
	}
}

func TestRenderNonFiniteValue(t *testing.T) {
	rs := sample(
		[3]any{"X", "p", 10},
		[3]any{"Y", "q", math.Inf(1)},
	)
	renderers := []Renderer{
		Bar{Key: "r", Value: "v", Reducer: Sum},
		Scatter{X: "v", Y: "v"},
		Heatmap{Outer: "r", Inner: "c", Value: "v", Reducer: Sum},
	}
	for _, rdr := range renderers {
		var ierr InvalidValueError
		if _, err := rdr.Render(rs, testOptions()); !errors.As(err, &ierr) {
			t.Errorf("%T: expected InvalidValueError, got %v", rdr, err)
		}
	}
}

func TestScatterRenderInvalidY(t *testing.T) {
	rs := []Record{
		NewRecord(map[string]Value{"x": Number(1), "y": Number(2)}),
		NewRecord(map[string]Value{"x": Number(3), "y": Text("n/a")}),
	}
	var ierr InvalidValueError
	if _, err := (Scatter{X: "x", Y: "y"}).Render(rs, testOptions()); !errors.As(err, &ierr) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if ierr.Field != "y" {
		t.Errorf("want error on field y, got %s", ierr.Field)
	}
}
