package tags

import "github.com/yohamta/donburi"

var (
	Wall        = donburi.NewTag().SetName("Wall")
	Spike       = donburi.NewTag().SetName("Spike")
	SpeedTile   = donburi.NewTag().SetName("SpeedTile")
	Environment = donburi.NewTag().SetName("Environment")
)
