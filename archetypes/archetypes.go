package archetypes

import (
	"github.com/automoto/tasplanner/components"
	cfg "github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Shape,
		components.Object,
		components.Order,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Shape,
		components.Object,
		components.Order,
	)
	SpeedTile = newArchetype(
		tags.SpeedTile,
		components.Shape,
		components.Object,
		components.Order,
	)
	Environment = newArchetype(
		tags.Environment,
		components.Shape,
		components.EnvEffect,
		components.Order,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
