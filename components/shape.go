package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShapeData is the outline an object was loaded with, in level coordinates.
type ShapeData struct {
	Name    string
	Outline []math.Vec2
}

var Shape = donburi.NewComponentType[ShapeData]()

// OrderData is the spawn sequence number. Static state keeps this order.
type OrderData int

var Order = donburi.NewComponentType[OrderData]()
