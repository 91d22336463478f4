package factory

import (
	"fmt"

	"github.com/automoto/tasplanner/archetypes"
	"github.com/automoto/tasplanner/components"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/automoto/tasplanner/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnvironment creates a region that scales gravity and movement.
func CreateEnvironment(ecs *ecs.ECS, env leveldata.Environment) (*donburi.Entry, error) {
	hb, err := gamemath.NewHitbox(toVecs(env.Outline))
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", env.Name, err)
	}

	entry := archetypes.Environment.Spawn(ecs)
	components.Shape.SetValue(entry, components.ShapeData{Name: env.Name, Outline: env.Outline})
	components.EnvEffect.SetValue(entry, components.EnvEffectData{
		Hitbox:       hb,
		Gravity:      env.Gravity,
		JumpSpeed:    env.JumpSpeed,
		WalkSpeed:    env.WalkSpeed,
		JumpOverride: env.JumpOverride,
	})
	components.Order.SetValue(entry, nextOrder(ecs))

	return entry, nil
}
