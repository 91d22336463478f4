package gamemath

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// mpvEpsilon keeps push vectors of touching shapes non-zero.
const mpvEpsilon = 1e-10

// Hitbox is a collision shape backed by a convex polygon.
type Hitbox struct {
	*Polygon
}

func NewHitbox(outline []Vec) (Hitbox, error) {
	p, err := NewPolygon(outline)
	if err != nil {
		return Hitbox{}, err
	}
	return Hitbox{Polygon: p}, nil
}

// RectHitbox builds an axis-aligned rectangular hitbox.
func RectHitbox(x1, y1, x2, y2 float64) Hitbox {
	return Hitbox{Polygon: Rect(x1, y1, x2, y2)}
}

// Equal compares outlines bit by bit.
func (h Hitbox) Equal(o Hitbox) bool {
	return h.Polygon.Equal(o.Polygon)
}

// Hash is consistent with Equal.
func (h Hitbox) Hash() uint64 {
	f := fnv.New64a()
	var buf [8]byte
	for _, pt := range h.outline {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(pt.X))
		f.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(pt.Y))
		f.Write(buf[:])
	}
	return f.Sum64()
}

// Collides runs a separating axis test between h and o. When the shapes
// overlap it returns the minimum penetration vector, oriented against the
// direction from h's center to o's center.
func (h Hitbox) Collides(o Hitbox) (Vec, bool) {
	best := math.Inf(1)
	var mpv Vec

	for _, axes := range [2][]Vec{h.edges, o.edges} {
		for _, edge := range axes {
			pv, ok := h.pushAlong(edge.Ortho(), o.outline)
			if !ok {
				return Vec{}, false
			}
			if n := pv.Dot(pv); n < best {
				best = n
				mpv = pv
			}
		}
	}

	if o.center.Sub(h.center).Dot(mpv) > 0 {
		mpv = mpv.Neg()
	}
	return mpv, true
}

// pushAlong projects both shapes onto axis. It reports false when the axis
// separates them, otherwise the push vector needed along that axis.
func (h Hitbox) pushAlong(axis Vec, other []Vec) (Vec, bool) {
	min1, max1 := project(h.outline, axis)
	min2, max2 := project(other, axis)

	if max1 < min2 || max2 < min1 {
		return Vec{}, false
	}
	d := math.Min(max2-min1, max1-min2)
	return axis.Scale(d/axis.Dot(axis) + mpvEpsilon), true
}

func project(pts []Vec, axis Vec) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		proj := pt.Dot(axis)
		lo = math.Min(lo, proj)
		hi = math.Max(hi, proj)
	}
	return lo, hi
}

// CollidesAsRect is an inclusive bounding-box overlap test. Both hitboxes
// are expected to be axis-aligned rectangles.
func (h Hitbox) CollidesAsRect(o Hitbox) bool {
	return h.left <= o.right && h.right >= o.left && h.low <= o.high && h.high >= o.low
}

// IsRect reports whether the hitbox has exactly four vertices.
func (h Hitbox) IsRect() bool {
	return h.Polygon != nil && len(h.outline) == 4
}
