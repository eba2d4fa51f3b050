package draw

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"sync"

	"fortio.org/safecast"
	svg "github.com/ajstarks/svgo"
	"github.com/midbel/tabcharts"
)

const (
	tickSize  = 6
	fontStyle = `font-family="sans-serif" font-size="12"`
)

// SVG is a surface painting one frame as a SVG document. The document is
// built completely before being kept so a failing commit leaves the surface
// unchanged.
type SVG struct {
	mu    sync.Mutex
	chart string
	doc   []byte
}

func NewSVG() *SVG {
	return &SVG{}
}

func (s *SVG) Commit(f charts.Frame) error {
	var buf bytes.Buffer
	if err := Paint(&buf, f); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != nil {
		return charts.DuplicateRenderError{Chart: f.Chart}
	}
	s.chart = f.Chart
	s.doc = buf.Bytes()
	return nil
}

func (s *SVG) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart, s.doc = "", nil
}

func (s *SVG) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc == nil
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return 0, fmt.Errorf("nothing rendered")
	}
	n, err := w.Write(s.doc)
	return int64(n), err
}

// Paint writes f as a SVG document to w.
func Paint(w io.Writer, f charts.Frame) error {
	p := painter{
		SVG: svg.New(w),
	}
	p.Start(p.px(f.Width), p.px(f.Height))
	p.Gid(html.EscapeString(f.Chart))
	p.Translate(p.px(f.Margins.Left), p.px(f.Margins.Top))
	for _, prim := range f.Primitives {
		switch prim := prim.(type) {
		case charts.Rect:
			p.rect(prim)
		case charts.Circle:
			p.circle(prim)
		case charts.AxisRef:
			p.axis(prim)
		case charts.TextLabel:
			p.label(prim)
		default:
			return fmt.Errorf("%T: unsupported primitive", prim)
		}
	}
	p.Gend()
	p.Gend()
	p.End()
	return p.err
}

type painter struct {
	*svg.SVG
	err error
}

func (p *painter) px(f float64) int {
	x, err := safecast.Round[int](f)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%g: invalid coordinate: %w", f, err)
	}
	return x
}

func fillStyle(fill string) string {
	return fmt.Sprintf(`fill="%s"`, html.EscapeString(fill))
}

func (p *painter) rect(r charts.Rect) {
	style := fillStyle(r.Fill)
	if r.Title == "" {
		p.Rect(p.px(r.X), p.px(r.Y), p.px(r.Width), p.px(r.Height), style)
		return
	}
	p.Group()
	p.Title(r.Title)
	p.Rect(p.px(r.X), p.px(r.Y), p.px(r.Width), p.px(r.Height), style)
	p.Gend()
}

func (p *painter) circle(c charts.Circle) {
	p.Circle(p.px(c.CX), p.px(c.CY), p.px(c.R), fillStyle(c.Fill))
}

func (p *painter) label(t charts.TextLabel) {
	style := fmt.Sprintf(`text-anchor="%s" %s`, t.Anchor, fontStyle)
	if t.Rotate != 0 {
		p.Gtransform(fmt.Sprintf("rotate(%g)", t.Rotate))
		defer p.Gend()
	}
	p.Text(p.px(t.X), p.px(t.Y), t.Text, style)
}

func (p *painter) axis(a charts.AxisRef) {
	if a.Scale == nil {
		return
	}
	var (
		rg     = a.Scale.Range()
		stroke = `stroke="black" stroke-width="1"`
	)
	if a.Vertical() {
		p.Translate(p.px(a.Offset), 0)
		p.Line(0, p.px(rg.Min()), 0, p.px(rg.Max()), stroke)
	} else {
		p.Translate(0, p.px(a.Offset))
		p.Line(p.px(rg.Min()), 0, p.px(rg.Max()), 0, stroke)
	}
	for _, t := range a.TickList() {
		pos := p.px(t.Pos)
		switch {
		case a.Vertical() && !a.Reverse():
			p.Line(-tickSize, pos, 0, pos, stroke)
			p.Text(-tickSize-3, pos, t.Label, `text-anchor="end" dominant-baseline="middle" `+fontStyle)
		case a.Vertical() && a.Reverse():
			p.Line(0, pos, tickSize, pos, stroke)
			p.Text(tickSize+3, pos, t.Label, `text-anchor="start" dominant-baseline="middle" `+fontStyle)
		case !a.Vertical() && a.Reverse():
			p.Line(pos, -tickSize, pos, 0, stroke)
			p.Text(pos, -tickSize-3, t.Label, `text-anchor="middle" `+fontStyle)
		default:
			p.Line(pos, 0, pos, tickSize, stroke)
			p.Text(pos, tickSize+3, t.Label, `text-anchor="middle" dominant-baseline="hanging" `+fontStyle)
		}
	}
	p.Gend()
}
