package charts

import (
	"image/color"
	"math"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/lucasb-eyer/go-colorful"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// PaletteByName resolves a named palette. Any other name is taken as a
// single color.
func PaletteByName(name string) Palette {
	switch strings.ToLower(name) {
	case "category10":
		return Category10
	case "tableau10":
		return Tableau10
	case "":
		return nil
	default:
		return Palette{name}
	}
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

// Interpolator gives the color at t in [0, 1].
type Interpolator func(t float64) color.Color

func (i Interpolator) Hex(t float64) string {
	c, ok := colorful.MakeColor(i(t))
	if !ok {
		return "#000000"
	}
	return c.Hex()
}

// Gradient interpolates in the Lab color space between evenly spaced
// stops.
type Gradient []colorful.Color

func NewGradient(hex ...string) (Gradient, error) {
	var g Gradient
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		g = append(g, c)
	}
	return g, nil
}

func (g Gradient) Map(t float64) color.Color {
	switch {
	case len(g) == 0:
		return color.Black
	case len(g) == 1 || t <= 0 || math.IsNaN(t):
		return g[0]
	case t >= 1:
		return g[len(g)-1]
	}
	var (
		n    = t * float64(len(g)-1)
		i    = int(n)
		frac = n - float64(i)
	)
	return g[i].BlendLab(g[i+1], frac).Clamped()
}

var (
	Blues   Interpolator
	Viridis Interpolator = palette.Viridis.Map
)

func init() {
	// ColorBrewer sequential blues, light to dark.
	g, err := NewGradient("#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b")
	if err != nil {
		panic(err)
	}
	Blues = g.Map
}

func InterpolatorByName(name string) (Interpolator, bool) {
	switch strings.ToLower(name) {
	case "blues", "":
		return Blues, true
	case "viridis":
		return Viridis, true
	default:
		return nil, false
	}
}
