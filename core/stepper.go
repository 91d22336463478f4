package core

import (
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
)

// Stepper advances states one tick at a time against a fixed level.
// It is safe for concurrent use.
type Stepper struct {
	static *StaticState
	cache  *RoundCache
}

// NewStepper uses a fresh cache when cache is nil.
func NewStepper(static *StaticState, cache *RoundCache) *Stepper {
	if cache == nil {
		cache = NewRoundCache()
	}
	return &Stepper{static: static, cache: cache}
}

func (s *Stepper) Static() *StaticState { return s.static }
func (s *Stepper) Cache() *RoundCache   { return s.cache }

// Step returns the state one tick after applying mov.
func (s *Stepper) Step(st PhysState, mov config.Move, sprint bool) PhysState {
	p := &st.Player

	s.applySpeedTiles(p)
	p.updateMovement(mov, sprint, st.Settings, s.static.activeModifier(st))

	p.X += s.cache.Delta(p.VX)
	p.Y += s.cache.Delta(p.VY)

	if len(s.static.Lethal) > 0 {
		hb := p.Hitbox()
		for _, l := range s.static.Lethal {
			if hb.CollidesAsRect(l) {
				p.Dead = true
				return st
			}
		}
	}

	s.resolveCollisions(p)

	if st.Settings.Mode == config.ModePlatformer {
		st = s.static.DetectModifier(st)
		if st.Player.InAir {
			st.Player.VY -= config.Physics.Gravity * s.static.activeModifier(st).gravity()
		}
	}
	return st
}

// applySpeedTiles takes control away while the player overlaps a tile and
// pushes north. A push already in progress is not stacked.
func (s *Stepper) applySpeedTiles(p *PlayerState) {
	if len(s.static.SpeedTiles) == 0 {
		p.CanControl = true
		return
	}

	alreadyPushing := p.CanControl && p.VPush > 0
	hb := p.Hitbox()
	hit := false
	for _, tile := range s.static.SpeedTiles {
		if _, ok := tile.Collides(hb); !ok {
			continue
		}
		hit = true
		if !alreadyPushing {
			p.VPush += config.Physics.PushSpeed
		}
	}

	if hit {
		p.CanControl = false
		p.Direction = config.DirectionN
	} else {
		p.CanControl = true
	}
}

type contact struct {
	solid int
	mpv   gamemath.Vec
}

// contacts splits the solids overlapping the player into horizontal and
// vertical pushes. Diagonal pushes are ignored.
func (s *Stepper) contacts(p *PlayerState) (xs, ys []contact) {
	left, right, low, high := p.Bounds()
	candidates := s.static.broadphase.Query(left, right, low, high)
	if len(candidates) == 0 {
		return nil, nil
	}

	hb := p.Hitbox()
	for _, i := range candidates {
		mpv, ok := s.static.Solids[i].Hitbox.Collides(hb)
		if !ok {
			continue
		}
		switch {
		case mpv.X == 0:
			ys = append(ys, contact{i, mpv})
		case mpv.Y == 0:
			xs = append(xs, contact{i, mpv})
		}
	}
	return xs, ys
}

// resolveCollisions snaps horizontally first, then resolves what still
// overlaps vertically.
func (s *Stepper) resolveCollisions(p *PlayerState) {
	xs, ys := s.contacts(p)
	if len(xs) == 0 && len(ys) == 0 {
		p.InAir = true
		return
	}

	for _, c := range xs {
		s.alignX(p, s.static.Solids[c.solid].Hitbox, c.mpv)
	}

	_, ys = s.contacts(p)
	for _, c := range ys {
		s.alignY(p, s.static.Solids[c.solid].Hitbox, c.mpv)
	}
}

func (s *Stepper) alignX(p *PlayerState, obj gamemath.Hitbox, mpv gamemath.Vec) {
	e := p.extent()
	p.VX = 0
	p.InAir = true
	if mpv.X > 0 {
		p.X = obj.Left() - e.MaxX - config.Physics.SnapGap
	} else {
		p.X = obj.Right() - e.MinX + config.Physics.SnapGap
	}
}

func (s *Stepper) alignY(p *PlayerState, obj gamemath.Hitbox, mpv gamemath.Vec) {
	e := p.extent()
	p.VY = 0
	if mpv.Y < 0 {
		p.Y = obj.High() - e.MinY
		p.InAir = false
	} else {
		p.Y = obj.Low() - e.MaxY
	}
}

// Step is one tick of a script: the input and the player it produced.
type Step struct {
	Move   config.Move `json:"move"`
	Sprint bool        `json:"sprint"`
	Player PlayerState `json:"player"`
}

// Replay runs the script from start. It returns the final state and the
// index of the first step whose recorded player differs from the replayed
// one, or -1 when every step matches.
func (s *Stepper) Replay(start PhysState, steps []Step) (PhysState, int) {
	st := start
	mismatch := -1
	for i, step := range steps {
		st = s.Step(st, step.Move, step.Sprint)
		if mismatch < 0 && !samePlayer(st.Player, step.Player) {
			mismatch = i
		}
	}
	return st, mismatch
}

func samePlayer(a, b PlayerState) bool {
	a.Extent, b.Extent = nil, nil
	return a == b
}

// GetTransition is the successor of state under one move.
func GetTransition(settings config.PhysicsSettings, static *StaticState, state PlayerState, mov config.Move, sprint bool) PlayerState {
	st := static.DetectModifier(NewPhysState(state, settings))
	return NewStepper(static, nil).Step(st, mov, sprint).Player
}
