package charts

import (
	"context"
	"fmt"
)

const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func DefaultMargins() Margins {
	return Margins{
		Top:    20,
		Right:  30,
		Bottom: 80,
		Left:   50,
	}
}

func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

type Options struct {
	Width   float64
	Height  float64
	Margins Margins
}

func DefaultOptions() Options {
	return Options{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Margins: DefaultMargins(),
	}
}

func (o Options) InnerWidth() float64 {
	return o.Width - o.Margins.Horizontal()
}

func (o Options) InnerHeight() float64 {
	return o.Height - o.Margins.Vertical()
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid dimension %gx%g", o.Width, o.Height)
	}
	m := o.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("margins can not be negative")
	}
	if o.InnerWidth() <= 0 || o.InnerHeight() <= 0 {
		return fmt.Errorf("margins leave no room to draw in %gx%g", o.Width, o.Height)
	}
	return nil
}

// Renderer builds the primitives of one chart kind from loaded records.
type Renderer interface {
	Render([]Record, Options) ([]Primitive, error)
}

// Chart owns the records of one dataset and renders them onto surfaces.
type Chart struct {
	Name string
	Options

	records []Record
	loaded  bool
}

func New(name string, opts Options) *Chart {
	return &Chart{
		Name:    name,
		Options: opts,
	}
}

// Load replaces the records of the chart by the ones given by loader. On
// failure the chart is left unloaded.
func (c *Chart) Load(ctx context.Context, loader TableLoader, path string) error {
	c.records, c.loaded = nil, false
	rs, err := loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("chart %s: %w", c.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("chart %s: %w", c.Name, err)
	}
	c.SetRecords(rs)
	return nil
}

func (c *Chart) SetRecords(rs []Record) {
	c.records = append([]Record(nil), rs...)
	c.loaded = true
}

func (c *Chart) Loaded() bool {
	return c.loaded
}

func (c *Chart) Records() []Record {
	return append([]Record(nil), c.records...)
}

// Render commits the primitives built by rdr to surface. Nothing is
// committed when an error occurs. A surface that is not empty is refused
// and should be cleared before rendering again.
func (c *Chart) Render(surface Surface, rdr Renderer) error {
	if !c.loaded {
		return NotLoadedError{Chart: c.Name}
	}
	if !surface.Empty() {
		return DuplicateRenderError{Chart: c.Name}
	}
	if err := c.Options.Validate(); err != nil {
		return fmt.Errorf("chart %s: %w", c.Name, err)
	}
	list, err := rdr.Render(c.records, c.Options)
	if err != nil {
		return fmt.Errorf("chart %s: %w", c.Name, err)
	}
	frame := Frame{
		Chart:      c.Name,
		Width:      c.Width,
		Height:     c.Height,
		Margins:    c.Margins,
		Primitives: list,
	}
	return surface.Commit(frame)
}
