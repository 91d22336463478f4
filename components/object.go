package components

import (
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	Hitbox gamemath.Hitbox
	Type   config.ObjectType
}

var Object = donburi.NewComponentType[ObjectData]()
