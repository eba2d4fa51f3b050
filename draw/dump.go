package draw

import (
	"fmt"
	"io"

	"github.com/midbel/tabcharts"
	"github.com/vmihailenco/msgpack/v5"
)

type Tick struct {
	Pos   float64 `msgpack:"pos"`
	Label string  `msgpack:"label"`
}

// Item is the serialized form of a primitive. Kind tells which of the
// other fields are meaningful.
type Item struct {
	Kind   string  `msgpack:"kind"`
	X      float64 `msgpack:"x,omitempty"`
	Y      float64 `msgpack:"y,omitempty"`
	Width  float64 `msgpack:"width,omitempty"`
	Height float64 `msgpack:"height,omitempty"`
	Radius float64 `msgpack:"r,omitempty"`
	Fill   string  `msgpack:"fill,omitempty"`
	Title  string  `msgpack:"title,omitempty"`
	Text   string  `msgpack:"text,omitempty"`
	Anchor string  `msgpack:"anchor,omitempty"`
	Rotate float64 `msgpack:"rotate,omitempty"`
	Orient string  `msgpack:"orient,omitempty"`
	Offset float64 `msgpack:"offset,omitempty"`
	Scale  string  `msgpack:"scale,omitempty"`
	Ticks  []Tick  `msgpack:"ticks,omitempty"`
}

// Orientation returns the edge an axis item is attached to.
func (i Item) Orientation() (charts.Orientation, bool) {
	if i.Kind != KindAxis {
		return 0, false
	}
	return charts.ParseOrientation(i.Orient)
}

const (
	KindRect  = "rect"
	KindDot   = "circle"
	KindAxis  = "axis"
	KindLabel = "text"
)

type Snapshot struct {
	Chart   string     `msgpack:"chart"`
	Width   float64    `msgpack:"width"`
	Height  float64    `msgpack:"height"`
	Margins [4]float64 `msgpack:"margins"`
	Items   []Item     `msgpack:"items"`
}

func (s Snapshot) Count(kind string) int {
	var n int
	for _, i := range s.Items {
		if i.Kind == kind {
			n++
		}
	}
	return n
}

func Snap(f charts.Frame) (Snapshot, error) {
	s := Snapshot{
		Chart:   f.Chart,
		Width:   f.Width,
		Height:  f.Height,
		Margins: [4]float64{f.Margins.Top, f.Margins.Right, f.Margins.Bottom, f.Margins.Left},
		Items:   make([]Item, 0, len(f.Primitives)),
	}
	for _, p := range f.Primitives {
		var it Item
		switch p := p.(type) {
		case charts.Rect:
			it = Item{
				Kind:   KindRect,
				X:      p.X,
				Y:      p.Y,
				Width:  p.Width,
				Height: p.Height,
				Fill:   p.Fill,
				Title:  p.Title,
			}
		case charts.Circle:
			it = Item{
				Kind:   KindDot,
				X:      p.CX,
				Y:      p.CY,
				Radius: p.R,
				Fill:   p.Fill,
			}
		case charts.TextLabel:
			it = Item{
				Kind:   KindLabel,
				X:      p.X,
				Y:      p.Y,
				Text:   p.Text,
				Anchor: string(p.Anchor),
				Rotate: p.Rotate,
			}
		case charts.AxisRef:
			it = Item{
				Kind:   KindAxis,
				Orient: p.Orientation.String(),
				Offset: p.Offset,
			}
			if p.Scale != nil {
				it.Scale = p.Scale.Kind().String()
				for _, t := range p.TickList() {
					it.Ticks = append(it.Ticks, Tick{Pos: t.Pos, Label: t.Label})
				}
			}
		default:
			return s, fmt.Errorf("%T: unsupported primitive", p)
		}
		s.Items = append(s.Items, it)
	}
	return s, nil
}

// Dump writes frames as a msgpack encoded list of snapshots.
func Dump(w io.Writer, frames ...charts.Frame) error {
	list := make([]Snapshot, 0, len(frames))
	for _, f := range frames {
		s, err := Snap(f)
		if err != nil {
			return err
		}
		list = append(list, s)
	}
	return msgpack.NewEncoder(w).Encode(list)
}

func Undump(r io.Reader) ([]Snapshot, error) {
	var list []Snapshot
	if err := msgpack.NewDecoder(r).Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}
