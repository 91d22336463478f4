package core

import (
	"errors"
	"fmt"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
)

// ErrLethalNotRect is returned for a spike whose hitbox is not a rectangle.
var ErrLethalNotRect = errors.New("lethal hitbox is not a rectangle")

// Object is a piece of static level geometry.
type Object struct {
	Hitbox gamemath.Hitbox
	Type   config.ObjectType
}

// EnvModifier scales gravity and movement inside a region. A zero
// multiplier is taken literally.
type EnvModifier struct {
	Name         string
	Hitbox       gamemath.Hitbox
	Gravity      float64
	JumpSpeed    float64
	WalkSpeed    float64
	JumpOverride bool
}

// NewEnvModifier returns a modifier that changes nothing.
func NewEnvModifier(name string, hb gamemath.Hitbox) EnvModifier {
	return EnvModifier{Name: name, Hitbox: hb, Gravity: 1, JumpSpeed: 1, WalkSpeed: 1}
}

func (m *EnvModifier) gravity() float64 {
	if m == nil {
		return 1
	}
	return m.Gravity
}

func (m *EnvModifier) jumpSpeed() float64 {
	if m == nil {
		return 1
	}
	return m.JumpSpeed
}

func (m *EnvModifier) walkSpeed() float64 {
	if m == nil {
		return 1
	}
	return m.WalkSpeed
}

func (m *EnvModifier) jumpOverride() bool {
	return m != nil && m.JumpOverride
}

// StaticState is the level geometry of one search. It is read-only after
// construction.
type StaticState struct {
	Solids       []Object
	SpeedTiles   []gamemath.Hitbox
	Lethal       []gamemath.Hitbox
	Environments []EnvModifier

	broadphase *Broadphase
}

// NewStaticState partitions objects by type. Lists keep input order.
func NewStaticState(objects []Object, envs []EnvModifier) (*StaticState, error) {
	s := &StaticState{Environments: envs}
	var solidBoxes []gamemath.Hitbox

	for i, o := range objects {
		switch o.Type {
		case config.ObjectWall:
			s.Solids = append(s.Solids, o)
			solidBoxes = append(solidBoxes, o.Hitbox)
		case config.ObjectSpike:
			if !o.Hitbox.IsRect() {
				return nil, fmt.Errorf("object %d: %w", i, ErrLethalNotRect)
			}
			s.Lethal = append(s.Lethal, o.Hitbox)
		case config.ObjectSpeedTile:
			s.SpeedTiles = append(s.SpeedTiles, o.Hitbox)
		default:
			return nil, fmt.Errorf("object %d: unknown type %d", i, int(o.Type))
		}
	}

	s.broadphase = NewBroadphase(solidBoxes, config.Physics.BroadphaseCellSize)
	return s, nil
}

// MustStaticState is like NewStaticState but panics on error.
func MustStaticState(objects []Object, envs []EnvModifier) *StaticState {
	s, err := NewStaticState(objects, envs)
	if err != nil {
		panic(err)
	}
	return s
}

// DetectModifier returns the state with its active modifier set to the
// first environment the player overlaps.
func (s *StaticState) DetectModifier(st PhysState) PhysState {
	st.modifier = 0
	if len(s.Environments) == 0 {
		return st
	}
	hb := st.Player.Hitbox()
	for i := range s.Environments {
		if _, ok := s.Environments[i].Hitbox.Collides(hb); ok {
			st.modifier = i + 1
			break
		}
	}
	return st
}

func (s *StaticState) activeModifier(st PhysState) *EnvModifier {
	if st.modifier <= 0 || st.modifier > len(s.Environments) {
		return nil
	}
	return &s.Environments[st.modifier-1]
}
