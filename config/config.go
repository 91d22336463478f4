package config

import "time"

// PhysicsConfig contains the constants of the game's movement model
type PhysicsConfig struct {
	// Timing
	TickSeconds      float64 // Duration of one tick
	PositionDecimals int     // Position deltas are rounded to this many decimals

	// Player movement
	JumpSpeed        float64
	MovementSpeed    float64
	SprintMultiplier float64 // Horizontal speed factor while sprinting

	// Gravity is subtracted from the vertical speed every airborne tick
	Gravity float64

	// Speed tiles
	PushSpeed float64 // Added to the push speed when a speed tile grabs the player
	PushDelta float64 // Per-tick push speed decay

	// Player hitbox
	PlayerHalfWidth  float64
	PlayerHalfHeight float64
	SnapGap          float64 // Extra horizontal clearance after a wall snap

	// State keys in simple geometry mode keep this many decimals
	SimpleGeometryDecimals int

	// Broadphase grid cell size in level units
	BroadphaseCellSize int
}

// SearchConfig contains default values for the A* planner
type SearchConfig struct {
	HeuristicWeight float64
	TargetPrecision float64       // Goal tolerance on each axis
	Timeout         time.Duration // Wall clock budget of one search
	CheckInterval   int           // Iterations between timeout checks
	NavCellSize     float64       // Cell size of the coarse reachability grid
}

// Global configuration instances
var Physics PhysicsConfig
var Search SearchConfig

func init() {
	Physics = PhysicsConfig{
		TickSeconds:      1.0 / 60.0,
		PositionDecimals: 5,

		JumpSpeed:        320.0,
		MovementSpeed:    160.0,
		SprintMultiplier: 1.5,

		Gravity: 6.0,

		PushSpeed: 2500.0,
		PushDelta: 125.0,

		PlayerHalfWidth:  16.0,
		PlayerHalfHeight: 16.0,
		SnapGap:          1.0,

		SimpleGeometryDecimals: 0,

		BroadphaseCellSize: 64,
	}

	Search = SearchConfig{
		HeuristicWeight: 5.0,
		TargetPrecision: 16.0,
		Timeout:         5 * time.Second,
		CheckInterval:   10000,
		NavCellSize:     32,
	}
}
