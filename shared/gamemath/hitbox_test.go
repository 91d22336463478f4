package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns an axis-aligned square of the given side centered on (cx, cy).
func square(cx, cy, side float64) Hitbox {
	h := side / 2
	return RectHitbox(cx-h, cy-h, cx+h, cy+h)
}

func TestCollidesOverlappingSquares(t *testing.T) {
	a := square(0, 0, 32)
	b := square(10, 0, 32)

	mpv, ok := a.Collides(b)
	require.True(t, ok)
	assert.InDelta(t, 22, mpv.Len(), 1e-6)
	assert.Equal(t, 0.0, mpv.Y)
	assert.Less(t, mpv.X, 0.0, "mpv points away from the other shape")
}

func TestCollidesSeparatedSquares(t *testing.T) {
	_, ok := square(0, 0, 32).Collides(square(40, 0, 32))
	assert.False(t, ok)
}

func TestCollidesTouchingSquares(t *testing.T) {
	mpv, ok := square(0, 0, 32).Collides(square(32, 0, 32))
	require.True(t, ok)
	assert.Less(t, mpv.Len(), 1e-6)
}

func TestCollidesIsAntisymmetric(t *testing.T) {
	tri, err := NewHitbox([]Vec{V(0, 0), V(30, 5), V(10, 28)})
	require.NoError(t, err)

	cases := []struct {
		name string
		a, b Hitbox
	}{
		{"squares x", square(0, 0, 32), square(10, 0, 32)},
		{"squares diagonal", square(0, 0, 32), square(12, -20, 32)},
		{"triangle and square", tri, square(20, 20, 16)},
		{"rect and tall rect", RectHitbox(-50, -5, 50, 5), RectHitbox(-3, -40, 3, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab, ok := tc.a.Collides(tc.b)
			require.True(t, ok)
			ba, ok := tc.b.Collides(tc.a)
			require.True(t, ok)
			assert.LessOrEqual(t, ab.Dot(ba), 0.0)
		})
	}
}

func TestCollidesVerticalLanding(t *testing.T) {
	ground := RectHitbox(-200, -32, 200, 0)
	player := square(0, 14, 32)

	mpv, ok := ground.Collides(player)
	require.True(t, ok)
	assert.Equal(t, 0.0, mpv.X)
	assert.Less(t, mpv.Y, 0.0)
}

func TestCollidesAsRectAgreesWithSAT(t *testing.T) {
	base := RectHitbox(0, 0, 40, 20)
	others := []Hitbox{
		RectHitbox(30, 10, 70, 50),
		RectHitbox(41, 0, 60, 20),
		RectHitbox(-10, -30, 5, -1),
		RectHitbox(10, 5, 20, 15),
		RectHitbox(-5, 19, 2, 40),
		RectHitbox(100, 100, 120, 130),
	}
	for _, o := range others {
		_, sat := base.Collides(o)
		assert.Equal(t, sat, base.CollidesAsRect(o), "rect %v", o.Outline())
	}
}

func TestHitboxEqualAndHash(t *testing.T) {
	a := RectHitbox(0, 0, 10, 10)
	b := RectHitbox(0, 0, 10, 10)
	c := RectHitbox(0, 0, 10, 11)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.True(t, a.IsRect())
}
