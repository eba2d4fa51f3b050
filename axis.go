package charts

const (
	FontSize     = 12.0
	DefaultTicks = 10
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

func (o Orientation) String() string {
	switch o {
	case OrientTop:
		return "top"
	case OrientRight:
		return "right"
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	default:
		return "unknown"
	}
}

func ParseOrientation(str string) (Orientation, bool) {
	switch str {
	case "top":
		return OrientTop, true
	case "right":
		return OrientRight, true
	case "bottom":
		return OrientBottom, true
	case "left":
		return OrientLeft, true
	default:
		return 0, false
	}
}

// AxisRef tells the surface to paint an axis for Scale along one edge of
// the plot area. Offset is the distance from the plot origin to the axis
// line (the height of the plot area for a bottom axis).
type AxisRef struct {
	Orientation
	Offset float64
	Ticks  int
	Scale  Scaler
}

func (AxisRef) primitive() {}

func (a AxisRef) TickList() []Tick {
	if a.Scale == nil {
		return nil
	}
	return a.Scale.Ticks(a.Ticks)
}

func bottomAxis(scale Scaler, height float64) AxisRef {
	return AxisRef{
		Orientation: OrientBottom,
		Offset:      height,
		Ticks:       DefaultTicks,
		Scale:       scale,
	}
}

func leftAxis(scale Scaler) AxisRef {
	return AxisRef{
		Orientation: OrientLeft,
		Ticks:       DefaultTicks,
		Scale:       scale,
	}
}
