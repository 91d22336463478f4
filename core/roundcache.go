package core

import (
	"math"
	"sync"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
)

// RoundCache memoizes the rounded per-tick position delta of a speed.
// It is safe for concurrent use; entries are never overwritten.
type RoundCache struct {
	deltas   sync.Map // uint64 speed bits -> float64 delta
	tick     float64
	decimals int
}

func NewRoundCache() *RoundCache {
	return &RoundCache{
		tick:     config.Physics.TickSeconds,
		decimals: config.Physics.PositionDecimals,
	}
}

// Delta returns round(tick*speed) to the configured number of decimals.
func (c *RoundCache) Delta(speed float64) float64 {
	key := math.Float64bits(speed)
	if d, ok := c.deltas.Load(key); ok {
		return d.(float64)
	}
	d, _ := c.deltas.LoadOrStore(key, gamemath.RoundDecimals(c.tick*speed, c.decimals))
	return d.(float64)
}

func (c *RoundCache) Len() int {
	n := 0
	c.deltas.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *RoundCache) Reset() {
	c.deltas.Clear()
}
