package core

import (
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
)

// Extent is an axis-aligned hitbox given as offsets from the player position.
type Extent struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// DefaultExtent is the player's square hitbox from the physics config.
func DefaultExtent() Extent {
	return Extent{
		MinX: -config.Physics.PlayerHalfWidth,
		MaxX: config.Physics.PlayerHalfWidth,
		MinY: -config.Physics.PlayerHalfHeight,
		MaxY: config.Physics.PlayerHalfHeight,
	}
}

// PlayerState is the kinematic state of the player. Only the stepper
// mutates it.
type PlayerState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Extent overrides the default hitbox when set. It is never mutated.
	Extent *Extent `json:"extent,omitempty"`

	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	VPush float64 `json:"vpush"`

	Direction  config.Direction `json:"direction"`
	CanControl bool             `json:"canControl"`
	InAir      bool             `json:"inAir"`
	Dead       bool             `json:"dead"`
}

// NewPlayerState returns an airborne, controllable player facing north.
func NewPlayerState(pos, vel gamemath.Vec) PlayerState {
	return PlayerState{
		X:          pos.X,
		Y:          pos.Y,
		VX:         vel.X,
		VY:         vel.Y,
		Direction:  config.DirectionN,
		CanControl: true,
		InAir:      true,
	}
}

func (p PlayerState) Center() gamemath.Vec {
	return gamemath.V(p.X, p.Y)
}

func (p PlayerState) extent() Extent {
	if p.Extent != nil {
		return *p.Extent
	}
	return DefaultExtent()
}

// Bounds returns the absolute hitbox extents: left, right, low, high.
func (p PlayerState) Bounds() (float64, float64, float64, float64) {
	e := p.extent()
	return p.X + e.MinX, p.X + e.MaxX, p.Y + e.MinY, p.Y + e.MaxY
}

func (p PlayerState) Hitbox() gamemath.Hitbox {
	left, right, low, high := p.Bounds()
	return gamemath.RectHitbox(left, low, right, high)
}

// CloseTo reports whether both coordinates are within precision of o's.
func (p PlayerState) CloseTo(o PlayerState, precision float64) bool {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx <= precision && dx >= -precision && dy <= precision && dy >= -precision
}

func multiplier(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// updateMovement applies one move to the velocity.
func (p *PlayerState) updateMovement(mov config.Move, sprint bool, settings config.PhysicsSettings, mod *EnvModifier) {
	p.VX = 0
	if settings.Mode == config.ModeScroller {
		p.VY = 0
	}

	if p.CanControl {
		if dir, ok := mov.Horizontal(); ok {
			p.changeDirection(dir, sprint, settings, mod)
		}
		if dir, ok := mov.Vertical(); ok {
			p.changeDirection(dir, sprint, settings, mod)
		}
	}

	p.VPush = gamemath.Decay(p.VPush, config.Physics.PushDelta)
	if p.VPush > 0 {
		switch p.Direction {
		case config.DirectionN:
			p.VY += p.VPush
		case config.DirectionS:
			p.VY -= p.VPush
		case config.DirectionE:
			p.VX += p.VPush
		case config.DirectionW:
			p.VX -= p.VPush
		}
	}
}

func (p *PlayerState) changeDirection(dir config.Direction, sprint bool, settings config.PhysicsSettings, mod *EnvModifier) {
	p.Direction = dir

	switch dir {
	case config.DirectionE, config.DirectionW:
		speed := config.Physics.MovementSpeed * mod.walkSpeed() * multiplier(settings.WalkMultiplier)
		if sprint {
			speed *= config.Physics.SprintMultiplier
		}
		if dir == config.DirectionW {
			speed = -speed
		}
		p.VX = speed
	case config.DirectionN:
		if settings.Mode == config.ModePlatformer && p.InAir && !mod.jumpOverride() {
			return
		}
		if settings.Mode == config.ModeScroller {
			p.VY = verticalSpeed(sprint, settings)
		} else {
			p.VY = config.Physics.JumpSpeed * mod.jumpSpeed() * multiplier(settings.JumpMultiplier)
		}
		p.InAir = true
	case config.DirectionS:
		if settings.Mode == config.ModeScroller && p.InAir {
			p.VY = -verticalSpeed(sprint, settings)
		}
	}
}

func verticalSpeed(sprint bool, settings config.PhysicsSettings) float64 {
	speed := config.Physics.MovementSpeed
	if sprint && settings.SprintVertical {
		speed *= config.Physics.SprintMultiplier
	}
	return speed
}
