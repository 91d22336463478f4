package systems

import (
	"errors"
	"slices"

	"github.com/automoto/tasplanner/components"
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/automoto/tasplanner/tags"
	"github.com/yohamta/donburi"
)

var ErrNoLevel = errors.New("no level in world")

type ordered[T any] struct {
	order components.OrderData
	value T
}

// BuildStaticState collects the walls, spikes, speed tiles and environments
// of the world into planner geometry, in spawn order.
func BuildStaticState(world donburi.World) (*core.StaticState, error) {
	var objects []ordered[core.Object]
	collect := func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		objects = append(objects, ordered[core.Object]{
			order: *components.Order.Get(e),
			value: core.Object{Hitbox: obj.Hitbox, Type: obj.Type},
		})
	}
	tags.Wall.Each(world, collect)
	tags.Spike.Each(world, collect)
	tags.SpeedTile.Each(world, collect)

	var envs []ordered[core.EnvModifier]
	tags.Environment.Each(world, func(e *donburi.Entry) {
		shape := components.Shape.Get(e)
		eff := components.EnvEffect.Get(e)
		envs = append(envs, ordered[core.EnvModifier]{
			order: *components.Order.Get(e),
			value: core.EnvModifier{
				Name:         shape.Name,
				Hitbox:       eff.Hitbox,
				Gravity:      eff.Gravity,
				JumpSpeed:    eff.JumpSpeed,
				WalkSpeed:    eff.WalkSpeed,
				JumpOverride: eff.JumpOverride,
			},
		})
	})

	slices.SortStableFunc(objects, func(a, b ordered[core.Object]) int { return int(a.order - b.order) })
	slices.SortStableFunc(envs, func(a, b ordered[core.EnvModifier]) int { return int(a.order - b.order) })

	staticObjects := make([]core.Object, len(objects))
	for i, o := range objects {
		staticObjects[i] = o.value
	}
	staticEnvs := make([]core.EnvModifier, len(envs))
	for i, e := range envs {
		staticEnvs[i] = e.value
	}

	return core.NewStaticState(staticObjects, staticEnvs)
}

// LevelInfo describes the planning problem stored with a level. Start and
// Target are nil when the level file does not define them.
type LevelInfo struct {
	Name   string
	Mode   config.GameMode
	Start  *core.PlayerState
	Target *core.PlayerState
}

func LevelEndpoints(world donburi.World) (*LevelInfo, error) {
	entry, ok := components.Level.First(world)
	if !ok {
		return nil, ErrNoLevel
	}
	level := components.Level.Get(entry)

	info := &LevelInfo{Name: level.Name, Mode: level.Mode}
	if level.Start != nil {
		p := core.NewPlayerState(gamemath.V(level.Start.X, level.Start.Y), gamemath.Vec{})
		info.Start = &p
	}
	if level.Target != nil {
		p := core.NewPlayerState(gamemath.V(level.Target.X, level.Target.Y), gamemath.Vec{})
		info.Target = &p
	}
	return info, nil
}
