package gamemath

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	ErrNotConvex      = errors.New("polygon is not strictly convex")
)

// Polygon is a convex outline with cached edge vectors, turn angles,
// extents and centroid. The caches always describe the current outline.
type Polygon struct {
	outline []Vec
	edges   []Vec
	angles  []float64

	center Vec
	left   float64
	right  float64
	low    float64
	high   float64
}

// NewPolygon validates outline and precomputes its derived geometry.
func NewPolygon(outline []Vec) (*Polygon, error) {
	p := &Polygon{}
	if err := p.SetOutline(outline); err != nil {
		return nil, err
	}
	return p, nil
}

// MustPolygon is NewPolygon that panics on invalid outlines.
func MustPolygon(outline ...Vec) *Polygon {
	p, err := NewPolygon(outline)
	if err != nil {
		panic(err)
	}
	return p
}

// Rect builds the axis-aligned rectangle [x1,x2]x[y1,y2].
func Rect(x1, y1, x2, y2 float64) *Polygon {
	return MustPolygon(V(x1, y1), V(x2, y1), V(x2, y2), V(x1, y2))
}

// SetOutline replaces the outline and recomputes every cached field. On
// error the polygon is left unchanged.
func (p *Polygon) SetOutline(outline []Vec) error {
	if len(outline) < 3 {
		return fmt.Errorf("%d vertices: %w", len(outline), ErrTooFewVertices)
	}

	pts := make([]Vec, len(outline))
	copy(pts, outline)

	edges := edgeVectors(pts)
	angles := turnAngles(edges)
	for i, a := range angles {
		if !(a < 180) {
			return fmt.Errorf("vertex %d turn angle %v: %w", (i+1)%len(pts), a, ErrNotConvex)
		}
	}
	if i, ok := consistentWinding(edges); !ok {
		return fmt.Errorf("vertex %d turns against the winding: %w", (i+1)%len(pts), ErrNotConvex)
	}

	p.outline = pts
	p.edges = edges
	p.angles = angles
	p.cacheExtents()
	return nil
}

func edgeVectors(pts []Vec) []Vec {
	edges := make([]Vec, len(pts))
	for i := range pts {
		edges[i] = pts[(i+1)%len(pts)].Sub(pts[i])
	}
	return edges
}

func turnAngles(edges []Vec) []float64 {
	angles := make([]float64, len(edges))
	for i := range edges {
		angles[i] = edges[i].Angle(edges[(i+1)%len(edges)])
	}
	return angles
}

// consistentWinding checks that every vertex turns the same way. The turn
// angle alone cannot tell a reflex vertex from a convex one.
func consistentWinding(edges []Vec) (int, bool) {
	var sign float64
	for i := range edges {
		c := edges[i].Cross(edges[(i+1)%len(edges)])
		if c == 0 {
			return i, false
		}
		if sign == 0 {
			sign = math.Copysign(1, c)
		} else if math.Signbit(c) != math.Signbit(sign) {
			return i, false
		}
	}
	return 0, true
}

func (p *Polygon) cacheExtents() {
	p.left, p.low = math.Inf(1), math.Inf(1)
	p.right, p.high = math.Inf(-1), math.Inf(-1)

	var sx, sy float64
	for _, pt := range p.outline {
		p.low = math.Min(p.low, pt.Y)
		p.high = math.Max(p.high, pt.Y)
		p.left = math.Min(p.left, pt.X)
		p.right = math.Max(p.right, pt.X)
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p.outline))
	p.center = Vec{X: sx / n, Y: sy / n}
}

// Outline returns a copy of the vertices.
func (p *Polygon) Outline() []Vec {
	out := make([]Vec, len(p.outline))
	copy(out, p.outline)
	return out
}

func (p *Polygon) Len() int          { return len(p.outline) }
func (p *Polygon) Edges() []Vec      { return p.edges }
func (p *Polygon) Angles() []float64 { return p.angles }
func (p *Polygon) Center() Vec       { return p.center }
func (p *Polygon) Left() float64     { return p.left }
func (p *Polygon) Right() float64    { return p.right }
func (p *Polygon) Low() float64      { return p.low }
func (p *Polygon) High() float64     { return p.high }

// Equal reports whether both outlines have bit-identical vertices in the same order.
func (p *Polygon) Equal(o *Polygon) bool {
	if len(p.outline) != len(o.outline) {
		return false
	}
	for i, a := range p.outline {
		b := o.outline[i]
		if math.Float64bits(a.X) != math.Float64bits(b.X) || math.Float64bits(a.Y) != math.Float64bits(b.Y) {
			return false
		}
	}
	return true
}
