package components

import (
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnvEffectData struct {
	Hitbox       gamemath.Hitbox
	Gravity      float64
	JumpSpeed    float64
	WalkSpeed    float64
	JumpOverride bool
}

var EnvEffect = donburi.NewComponentType[EnvEffectData]()
