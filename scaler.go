package charts

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

type ScaleKind int

const (
	ScaleBand ScaleKind = iota + 1
	ScaleLinear
	ScaleColor
)

func (k ScaleKind) String() string {
	switch k {
	case ScaleBand:
		return "band"
	case ScaleLinear:
		return "linear"
	case ScaleColor:
		return "sequential-color"
	default:
		return "unknown"
	}
}

// Range is an interval of pixels. F can be greater than T when the axis
// grows towards the origin of the drawing surface (eg: vertical axis).
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) Reversed() bool {
	return r.F > r.T
}

type Tick struct {
	Pos   float64
	Label string
}

// Scaler is the part of a scale an axis needs to be painted.
type Scaler interface {
	Kind() ScaleKind
	Range() Range
	Ticks(int) []Tick
}

type BandScale struct {
	rg      Range
	domain  []string
	index   map[string]int
	padding float64
}

// NewBandScale splits rg in len(domain) slots of equal width. Each band is
// shrunk by padding*slot, half on each side. domain is kept in the given
// order.
func NewBandScale(domain []string, rg Range, padding float64) (BandScale, error) {
	var s BandScale
	if len(domain) == 0 {
		return s, DomainError{Message: "band scale: empty domain"}
	}
	if padding < 0 || padding >= 1 || math.IsNaN(padding) {
		return s, fmt.Errorf("band scale: padding %g out of [0, 1)", padding)
	}
	s.rg = rg
	s.padding = padding
	s.domain = make([]string, 0, len(domain))
	s.index = make(map[string]int, len(domain))
	for _, d := range domain {
		if _, ok := s.index[d]; ok {
			return s, DomainError{Value: d, Message: "band scale: duplicate value in domain"}
		}
		s.index[d] = len(s.domain)
		s.domain = append(s.domain, d)
	}
	return s, nil
}

func (s BandScale) Kind() ScaleKind {
	return ScaleBand
}

func (s BandScale) Range() Range {
	return s.rg
}

func (s BandScale) Domain() []string {
	return append([]string(nil), s.domain...)
}

func (s BandScale) Space() float64 {
	if len(s.domain) == 0 {
		return 0
	}
	return math.Abs(s.rg.Len()) / float64(len(s.domain))
}

func (s BandScale) Bandwidth() float64 {
	return s.Space() * (1 - s.padding)
}

// Band returns the lowest coordinate covered by the band of v and its
// width.
func (s BandScale) Band(v string) (float64, float64, error) {
	x, ok := s.index[v]
	if !ok {
		return 0, 0, DomainError{Value: v, Message: "value not in band scale domain"}
	}
	var (
		space = s.Space()
		start = s.rg.F + float64(x)*space
	)
	if s.rg.Reversed() {
		start = s.rg.F - float64(x+1)*space
	}
	return start + space*s.padding/2, s.Bandwidth(), nil
}

func (s BandScale) Ticks(_ int) []Tick {
	list := make([]Tick, 0, len(s.domain))
	for _, d := range s.domain {
		pos, width, _ := s.Band(d)
		list = append(list, Tick{
			Pos:   pos + width/2,
			Label: d,
		})
	}
	return list
}

type LinearScale struct {
	rg     Range
	domain scale.Linear
}

func NewLinearScale(min, max float64, rg Range) LinearScale {
	return LinearScale{
		rg: rg,
		domain: scale.Linear{
			Min: min,
			Max: max,
		},
	}
}

func (s LinearScale) Kind() ScaleKind {
	return ScaleLinear
}

func (s LinearScale) Range() Range {
	return s.rg
}

func (s LinearScale) Domain() (float64, float64) {
	return s.domain.Min, s.domain.Max
}

func (s LinearScale) Degenerate() bool {
	return s.domain.Min == s.domain.Max
}

// Scale maps v to the range. A degenerate domain maps everything to the
// start of the range.
func (s LinearScale) Scale(v float64) float64 {
	if s.Degenerate() {
		return s.rg.F
	}
	return s.rg.F + s.domain.Map(v)*s.rg.Len()
}

func (s LinearScale) Ticks(count int) []Tick {
	if count <= 0 {
		count = DefaultTicks
	}
	var values []float64
	if s.Degenerate() {
		values = []float64{s.domain.Min}
	} else {
		values, _ = s.domain.Ticks(scale.TickOptions{Max: count})
	}
	list := make([]Tick, 0, len(values))
	for _, v := range values {
		list = append(list, Tick{
			Pos:   s.Scale(v),
			Label: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}
	return list
}

type ColorScale struct {
	max    float64
	interp Interpolator
}

// NewColorScale maps [0, max] onto the colors given by interp.
func NewColorScale(max float64, interp Interpolator) ColorScale {
	if interp == nil {
		interp = Blues
	}
	return ColorScale{
		max:    max,
		interp: interp,
	}
}

func (s ColorScale) Kind() ScaleKind {
	return ScaleColor
}

func (s ColorScale) Range() Range {
	return NewRange(0, 1)
}

func (s ColorScale) Domain() (float64, float64) {
	return 0, s.max
}

func (s ColorScale) Ticks(_ int) []Tick {
	return []Tick{
		{Pos: 0, Label: "0"},
		{Pos: 1, Label: strconv.FormatFloat(s.max, 'f', -1, 64)},
	}
}

// Color returns the color of v. Values outside [0, max] get the color of
// the nearest boundary.
func (s ColorScale) Color(v float64) string {
	var t float64
	if s.max > 0 {
		dom := scale.Linear{Min: 0, Max: s.max}
		t = math.Min(math.Max(dom.Map(v), 0), 1)
	}
	if math.IsNaN(t) {
		t = 0
	}
	return s.interp.Hex(t)
}
