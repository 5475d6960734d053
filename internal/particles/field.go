// Package particles simulates the decorative point field drawn behind the
// page. The browser only paints the frames it receives.
package particles

import (
	"math"
	"math/rand/v2"
)

// Defaults used when a Config field is zero.
const (
	DefaultCount        = 60
	DefaultLinkDistance = 120.0
	DefaultFPS          = 30
	DefaultWidth        = 1280.0
	DefaultHeight       = 720.0
)

// maxSpeed is the per-frame speed, in pixels, of the nearest points.
const maxSpeed = 0.35

// Config sizes a Field.
type Config struct {
	Count        int
	LinkDistance float64
	Width        float64
	Height       float64
	// Seed makes the initial layout reproducible. Zero picks a random seed.
	Seed uint64
}

func (c Config) withDefaults() Config {
	if c.Count <= 0 {
		c.Count = DefaultCount
	}
	if c.LinkDistance <= 0 {
		c.LinkDistance = DefaultLinkDistance
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Seed == 0 {
		c.Seed = rand.Uint64()
	}
	return c
}

// Point is one particle. Depth in [0, 1] scales its size, opacity and
// speed; 1 is nearest.
type Point struct {
	X, Y   float64
	VX, VY float64
	Depth  float64
}

// Dot is a point as drawn.
type Dot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Alpha float64 `json:"a"`
}

// Link is a line between two nearby points.
type Link struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Alpha float64 `json:"a"`
}

// Frame is everything needed to draw one tick.
type Frame struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	Dots   []Dot   `json:"dots"`
	Links  []Link  `json:"links"`
}

// Field is a fixed-size set of points moving inside a canvas. It is not
// safe for concurrent use.
type Field struct {
	width, height float64
	linkDistance  float64
	points        []Point
}

// NewField scatters cfg.Count points across the canvas.
func NewField(cfg Config) *Field {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	points := make([]Point, cfg.Count)
	for i := range points {
		depth := rng.Float64()
		speed := maxSpeed * (0.3 + 0.7*depth)
		angle := rng.Float64() * 2 * math.Pi
		points[i] = Point{
			X:     rng.Float64() * cfg.Width,
			Y:     rng.Float64() * cfg.Height,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Depth: depth,
		}
	}
	return &Field{
		width:        cfg.Width,
		height:       cfg.Height,
		linkDistance: cfg.LinkDistance,
		points:       points,
	}
}

// Points returns the current points.
func (f *Field) Points() []Point { return f.points }

// Size returns the canvas dimensions.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Step advances every point by its velocity, wrapping at the edges.
func (f *Field) Step() {
	for i := range f.points {
		p := &f.points[i]
		p.X = wrap(p.X+p.VX, f.width)
		p.Y = wrap(p.Y+p.VY, f.height)
	}
}

// Resize changes the canvas dimensions. Points keep their coordinates;
// any left outside the new bounds wrap back in on their next step.
func (f *Field) Resize(width, height float64) {
	if width > 0 {
		f.width = width
	}
	if height > 0 {
		f.height = height
	}
}

// Frame renders the current state.
func (f *Field) Frame() Frame {
	fr := Frame{
		Width:  f.width,
		Height: f.height,
		Dots:   make([]Dot, len(f.points)),
	}
	for i, p := range f.points {
		fr.Dots[i] = Dot{X: p.X, Y: p.Y, R: 0.6 + 1.8*p.Depth, Alpha: 0.25 + 0.6*p.Depth}
	}
	for i := range f.points {
		a := f.points[i]
		for _, b := range f.points[i+1:] {
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= f.linkDistance {
				continue
			}
			fr.Links = append(fr.Links, Link{
				X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
				Alpha: 1 - d/f.linkDistance,
			})
		}
	}
	return fr
}

// wrap folds v into [0, size).
func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
