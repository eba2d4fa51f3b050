package charts

import (
	"sync"
)

// Frame is everything a chart asks a surface to paint. Coordinates of the
// primitives are relative to the plot area, ie after the margins have been
// applied.
type Frame struct {
	Chart      string
	Width      float64
	Height     float64
	Margins    Margins
	Primitives []Primitive
}

func (f Frame) Copy() Frame {
	x := f
	x.Primitives = append([]Primitive(nil), f.Primitives...)
	return x
}

func (f Frame) Axes() []AxisRef {
	var list []AxisRef
	for _, p := range f.Primitives {
		if a, ok := p.(AxisRef); ok {
			list = append(list, a)
		}
	}
	return list
}

func (f Frame) Marks() []Primitive {
	var list []Primitive
	for _, p := range f.Primitives {
		switch p.(type) {
		case Rect, Circle:
			list = append(list, p)
		default:
		}
	}
	return list
}

type Surface interface {
	// Commit takes ownership of a copy of the frame. Implementations must
	// either accept the whole frame or nothing.
	Commit(Frame) error
	Clear()
	Empty() bool
}

// Canvas is a Surface that keeps the committed frames in memory.
type Canvas struct {
	mu     sync.Mutex
	frames []Frame
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Commit(f Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, f.Copy())
	return nil
}

func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = nil
}

func (c *Canvas) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames) == 0
}

func (c *Canvas) Frames() []Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := make([]Frame, 0, len(c.frames))
	for _, f := range c.frames {
		list = append(list, f.Copy())
	}
	return list
}

// Frame returns the last committed frame.
func (c *Canvas) Frame() (Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.frames) == 0 {
		return Frame{}, false
	}
	return c.frames[len(c.frames)-1].Copy(), true
}
