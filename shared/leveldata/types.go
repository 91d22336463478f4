// Package leveldata parses TMX levels into plain geometry. Coordinates are
// converted to the planner's y-up space.
package leveldata

import "github.com/yohamta/donburi/features/math"

// Level holds everything the planner needs from a TMX file.
type Level struct {
	Name string
	// Mode is the map's "mode" property: "platformer" or "scroller".
	Mode string

	Walls        []Shape
	Spikes       []Shape
	SpeedTiles   []Shape
	Environments []Environment

	Start  *math.Vec2
	Target *math.Vec2

	MapWidth  int
	MapHeight int
}

// Shape is a convex outline in level coordinates.
type Shape struct {
	Name    string
	Outline []math.Vec2
}

// Environment is a region with movement multipliers.
type Environment struct {
	Shape
	Gravity      float64
	JumpSpeed    float64
	WalkSpeed    float64
	JumpOverride bool
}

// Options tweak how levels are loaded.
type Options struct {
	// ExtendDeadly grows rectangular spikes by this much on every side.
	ExtendDeadly float64
}
