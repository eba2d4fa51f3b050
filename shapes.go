package charts

// Primitive is one of Rect, Circle, AxisRef or TextLabel.
type Primitive interface {
	primitive()
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string
	Title  string
}

func (Rect) primitive() {}

type Circle struct {
	CX   float64
	CY   float64
	R    float64
	Fill string
}

func (Circle) primitive() {}

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// TextLabel is positioned in the coordinate system obtained after rotating
// the plot area by Rotate degrees.
type TextLabel struct {
	X      float64
	Y      float64
	Anchor Anchor
	Rotate float64
	Text   string
}

func (TextLabel) primitive() {}

func xLabel(str string, opts Options) TextLabel {
	return TextLabel{
		X:      opts.InnerWidth() / 2,
		Y:      opts.Height - opts.Margins.Bottom + 30,
		Anchor: AnchorMiddle,
		Text:   str,
	}
}

func yLabel(str string, opts Options) TextLabel {
	return TextLabel{
		X:      -opts.InnerHeight() / 2,
		Y:      -opts.Margins.Left + 10,
		Anchor: AnchorMiddle,
		Rotate: -90,
		Text:   str,
	}
}
