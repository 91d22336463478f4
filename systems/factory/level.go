package factory

import (
	"fmt"
	"log"

	"github.com/automoto/tasplanner/archetypes"
	"github.com/automoto/tasplanner/components"
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity followed by every object of the level:
// walls, spikes, speed tiles, then environments, each in file order.
func CreateLevel(ecs *ecs.ECS, data *leveldata.Level) (*donburi.Entry, error) {
	mode, err := config.ParseGameMode(data.Mode)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   data.Name,
		Mode:   mode,
		Start:  data.Start,
		Target: data.Target,
		Width:  data.MapWidth,
		Height: data.MapHeight,
	})

	groups := []struct {
		shapes []leveldata.Shape
		create createFunc
	}{
		{data.Walls, CreateWall},
		{data.Spikes, CreateSpike},
		{data.SpeedTiles, CreateSpeedTile},
	}
	for _, g := range groups {
		for _, s := range g.shapes {
			if _, err := g.create(ecs, s.Name, s.Outline); err != nil {
				return nil, fmt.Errorf("level %s: %w", data.Name, err)
			}
		}
	}
	for _, env := range data.Environments {
		if _, err := CreateEnvironment(ecs, env); err != nil {
			return nil, fmt.Errorf("level %s: %w", data.Name, err)
		}
	}

	log.Printf("Loaded level %s: mode %s, %d walls, %d spikes, %d speed tiles, %d environments, %dx%d map",
		data.Name, mode, len(data.Walls), len(data.Spikes), len(data.SpeedTiles),
		len(data.Environments), data.MapWidth, data.MapHeight)

	return level, nil
}
