package core

import (
	"math"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
)

// PhysState is a search node: the player plus the settings it moves under.
type PhysState struct {
	Player   PlayerState
	Settings config.PhysicsSettings

	// modifier is the active environment index plus one; zero means none.
	modifier int
}

func NewPhysState(player PlayerState, settings config.PhysicsSettings) PhysState {
	return PhysState{Player: player, Settings: settings}
}

// ActiveModifier returns the index of the environment applied on the last
// tick.
func (s PhysState) ActiveModifier() (int, bool) {
	return s.modifier - 1, s.modifier > 0
}

// StateKey identifies equivalent states. Fields that do not take part in
// equivalence under the current settings are left zero.
type StateKey struct {
	X, Y       uint64
	VY         uint64
	VPush      uint64
	CanControl bool
	Direction  config.Direction
}

func (s PhysState) Key() StateKey {
	p := s.Player
	k := StateKey{X: s.bits(p.X), Y: s.bits(p.Y)}
	if s.Settings.EnableVPush {
		k.VPush = s.bits(p.VPush)
		k.CanControl = p.CanControl
		k.Direction = p.Direction
	}
	if s.Settings.Mode == config.ModePlatformer {
		k.VY = s.bits(p.VY)
	}
	return k
}

func (s PhysState) bits(v float64) uint64 {
	if s.Settings.SimpleGeometry {
		v = gamemath.RoundDecimals(v, config.Physics.SimpleGeometryDecimals)
		if v == 0 {
			v = 0 // fold -0
		}
	}
	return math.Float64bits(v)
}

func (s PhysState) Equal(o PhysState) bool {
	return s.Key() == o.Key()
}
