package core

import (
	"sync"
	"testing"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestKeyIgnoresVYInScroller(t *testing.T) {
	a, b := scrollerAt(10, 20), scrollerAt(10, 20)
	b.Player.VY = 55
	assert.True(t, a.Equal(b))

	a, b = platformerAt(10, 20), platformerAt(10, 20)
	b.Player.VY = 55
	assert.False(t, a.Equal(b))
}

func TestKeyPushFieldsFollowSetting(t *testing.T) {
	a, b := scrollerAt(0, 0), scrollerAt(0, 0)
	b.Player.VPush = 100
	b.Player.CanControl = false
	b.Player.Direction = config.DirectionE
	assert.True(t, a.Equal(b))

	a.Settings.EnableVPush = true
	b.Settings.EnableVPush = true
	assert.False(t, a.Equal(b))
}

func TestKeyIgnoresUnrelatedFields(t *testing.T) {
	a, b := platformerAt(0, 0), platformerAt(0, 0)
	b.Player.VX = 99
	b.Player.InAir = false
	b.modifier = 3
	assert.Equal(t, a.Key(), b.Key())
}

func TestKeySimpleGeometryRounds(t *testing.T) {
	a, b := scrollerAt(1.2, -0.3), scrollerAt(0.9, 0.2)
	assert.False(t, a.Equal(b))

	a.Settings.SimpleGeometry = true
	b.Settings.SimpleGeometry = true
	assert.True(t, a.Equal(b))
}

func TestKeyUsableAsMapKey(t *testing.T) {
	seen := map[StateKey]int{}
	seen[platformerAt(1, 2).Key()] = 7

	st := platformerAt(1, 2)
	st.Player.VX = 3
	assert.Equal(t, 7, seen[st.Key()])
}

func TestRoundCacheDelta(t *testing.T) {
	c := NewRoundCache()
	assert.Equal(t, 2.66667, c.Delta(160))
	assert.Equal(t, -2.66667, c.Delta(-160))
	assert.Equal(t, 0.0, c.Delta(0))
	assert.Equal(t, 3, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestRoundCacheConcurrent(t *testing.T) {
	c := NewRoundCache()
	speeds := []float64{0, 160, 240, -160, 320, 2375, 6.5}

	var wg sync.WaitGroup
	results := make([][]float64, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for _, v := range speeds {
					results[g] = append(results[g], c.Delta(v))
				}
			}
		}()
	}
	wg.Wait()

	for g := 1; g < len(results); g++ {
		assert.Equal(t, results[0], results[g])
	}
	assert.Equal(t, len(speeds), c.Len())
}

func TestBroadphaseQuery(t *testing.T) {
	bp := NewBroadphase([]gamemath.Hitbox{
		gamemath.RectHitbox(-300, -40, -100, 0),
		gamemath.RectHitbox(0, 0, 64, 64),
		gamemath.RectHitbox(64, 0, 200, 10),
		gamemath.RectHitbox(1000, 1000, 1010, 1010),
	}, 64)

	assert.Equal(t, []int{1, 2}, bp.Query(50, 70, 5, 20))
	// Touching edges count.
	assert.Equal(t, []int{0}, bp.Query(-132, -100, 0, 32))
	assert.Equal(t, []int{1, 2}, bp.Query(64, 64, 10, 10))
	assert.Empty(t, bp.Query(500, 520, 500, 520))
	assert.Empty(t, bp.Query(-5000, -4900, 0, 10))
	assert.Equal(t, []int{3}, bp.Query(990, 1000, 990, 1000))
}

func TestBroadphaseEmpty(t *testing.T) {
	bp := NewBroadphase(nil, 64)
	assert.Nil(t, bp.Query(0, 10, 0, 10))
	assert.Equal(t, 0, bp.Len())
}

func TestBroadphaseMatchesBruteForce(t *testing.T) {
	var boxes []gamemath.Hitbox
	for i := 0; i < 12; i++ {
		x := float64(i*37 - 200)
		y := float64((i*53)%160 - 80)
		boxes = append(boxes, gamemath.RectHitbox(x, y, x+float64(20+i*3), y+float64(10+i*5)))
	}
	bp := NewBroadphase(boxes, 32)

	for qx := -260.0; qx < 300; qx += 23 {
		for qy := -120.0; qy < 140; qy += 19 {
			var want []int
			for i, b := range boxes {
				if !(b.Left() > qx+16 || b.Right() < qx-16 || b.Low() > qy+16 || b.High() < qy-16) {
					want = append(want, i)
				}
			}
			assert.Equal(t, want, bp.Query(qx-16, qx+16, qy-16, qy+16), "query at %v,%v", qx, qy)
		}
	}
}
