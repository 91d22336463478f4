package components

import (
	"github.com/automoto/tasplanner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Name   string
	Mode   config.GameMode
	Start  *math.Vec2
	Target *math.Vec2
	Width  int
	Height int

	// NextOrder numbers spawned objects.
	NextOrder int
}

var Level = donburi.NewComponentType[LevelData]()
