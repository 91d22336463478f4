package factory

import (
	"fmt"

	"github.com/automoto/tasplanner/archetypes"
	"github.com/automoto/tasplanner/components"
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type spawnFunc func(*ecs.ECS, ...donburi.IComponentType) *donburi.Entry

type createFunc func(*ecs.ECS, string, []math.Vec2) (*donburi.Entry, error)

func CreateWall(ecs *ecs.ECS, name string, outline []math.Vec2) (*donburi.Entry, error) {
	return createObject(ecs, archetypes.Wall.Spawn, config.ObjectWall, name, outline)
}

// CreateSpike creates a lethal zone. Static state only accepts rectangles.
func CreateSpike(ecs *ecs.ECS, name string, outline []math.Vec2) (*donburi.Entry, error) {
	return createObject(ecs, archetypes.Spike.Spawn, config.ObjectSpike, name, outline)
}

func CreateSpeedTile(ecs *ecs.ECS, name string, outline []math.Vec2) (*donburi.Entry, error) {
	return createObject(ecs, archetypes.SpeedTile.Spawn, config.ObjectSpeedTile, name, outline)
}

func createObject(ecs *ecs.ECS, spawn spawnFunc, typ config.ObjectType, name string, outline []math.Vec2) (*donburi.Entry, error) {
	hb, err := gamemath.NewHitbox(toVecs(outline))
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", typ, name, err)
	}

	entry := spawn(ecs)
	components.Shape.SetValue(entry, components.ShapeData{Name: name, Outline: outline})
	components.Object.SetValue(entry, components.ObjectData{Hitbox: hb, Type: typ})
	components.Order.SetValue(entry, nextOrder(ecs))

	return entry, nil
}

// nextOrder takes the next sequence number from the level entity, if any.
func nextOrder(ecs *ecs.ECS) components.OrderData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0
	}
	level := components.Level.Get(entry)
	n := level.NextOrder
	level.NextOrder++
	return components.OrderData(n)
}

func toVecs(points []math.Vec2) []gamemath.Vec {
	vs := make([]gamemath.Vec, len(points))
	for i, p := range points {
		vs[i] = gamemath.V(p.X, p.Y)
	}
	return vs
}
