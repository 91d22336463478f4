package config

import (
	"errors"
	"fmt"
	"time"
)

// PhysicsSettings are the per-run switches of the movement model. They also
// decide which fields take part in state equivalence.
type PhysicsSettings struct {
	Mode GameMode `json:"mode"`

	// EnableVPush keys states on push speed, control and direction.
	EnableVPush bool `json:"enableVPush"`
	// SimpleGeometry rounds position and speeds before keying states.
	SimpleGeometry bool `json:"simpleGeometry"`
	// SprintVertical applies the sprint factor to scroller vertical movement.
	SprintVertical bool `json:"sprintVertical"`

	WalkMultiplier float64 `json:"walkMultiplier"`
	JumpMultiplier float64 `json:"jumpMultiplier"`
}

// SearchSettings configure one planner run
type SearchSettings struct {
	Physics PhysicsSettings `json:"physics"`

	Timeout       time.Duration `json:"timeout"`
	CheckInterval int           `json:"checkInterval"`

	AlwaysSprint bool `json:"alwaysSprint"`
	NeverSprint  bool `json:"neverSprint"`

	// AllowedMoves overrides the mode's default move set when non-empty.
	AllowedMoves []Move `json:"allowedMoves,omitempty"`

	HeuristicWeight float64 `json:"heuristicWeight"`
	TargetPrecision float64 `json:"targetPrecision"`

	// Workers > 1 expands the neighbours of a node in parallel.
	Workers int `json:"workers"`

	// Precheck gives up early when a coarse grid shows no free route to
	// the target. The grid ignores push speed, so it can reject targets
	// only reachable through speed tiles.
	Precheck bool `json:"precheck"`
	Verbose  bool `json:"verbose"`
}

// DefaultPhysicsSettings returns the settings matching the unmodified game.
func DefaultPhysicsSettings(mode GameMode) PhysicsSettings {
	return PhysicsSettings{
		Mode:           mode,
		WalkMultiplier: 1,
		JumpMultiplier: 1,
	}
}

// DefaultSearchSettings fills every field from the global Search config.
func DefaultSearchSettings(mode GameMode) SearchSettings {
	return SearchSettings{
		Physics:         DefaultPhysicsSettings(mode),
		Timeout:         Search.Timeout,
		CheckInterval:   Search.CheckInterval,
		HeuristicWeight: Search.HeuristicWeight,
		TargetPrecision: Search.TargetPrecision,
		Workers:         1,
	}
}

// Moves returns the move set to expand, in a fixed order.
func (s SearchSettings) Moves() []Move {
	if len(s.AllowedMoves) > 0 {
		return s.AllowedMoves
	}
	if s.Physics.Mode == ModeScroller {
		return ScrollerMoves
	}
	return PlatformerMoves
}

// SprintVariants returns the sprint flags to try for every move.
func (s SearchSettings) SprintVariants() []bool {
	switch {
	case s.AlwaysSprint:
		return []bool{true}
	case s.NeverSprint:
		return []bool{false}
	}
	return []bool{false, true}
}

// Validate reports settings that cannot drive a search.
func (s SearchSettings) Validate() error {
	if s.AlwaysSprint && s.NeverSprint {
		return errors.New("always sprint and never sprint are mutually exclusive")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", s.Timeout)
	}
	if s.CheckInterval <= 0 {
		return fmt.Errorf("check interval must be positive, got %d", s.CheckInterval)
	}
	if s.HeuristicWeight < 0 {
		return fmt.Errorf("heuristic weight must not be negative, got %v", s.HeuristicWeight)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	if s.TargetPrecision < 0 {
		return fmt.Errorf("target precision must not be negative, got %v", s.TargetPrecision)
	}
	for _, m := range s.AllowedMoves {
		if m < MoveNone || m > MoveSD {
			return fmt.Errorf("invalid move %d", int(m))
		}
	}
	return nil
}
