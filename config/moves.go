package config

import (
	"fmt"
	"strings"
)

// Move is one per-tick directional input. Letters follow the WASD layout.
type Move int

const (
	MoveNone Move = iota
	MoveA
	MoveD
	MoveW
	MoveWA
	MoveWD
	MoveS
	MoveSA
	MoveSD
)

var moveNames = map[Move]string{
	MoveNone: "NONE",
	MoveA:    "A",
	MoveD:    "D",
	MoveW:    "W",
	MoveWA:   "WA",
	MoveWD:   "WD",
	MoveS:    "S",
	MoveSA:   "SA",
	MoveSD:   "SD",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return "unknown"
}

func (m Move) MarshalText() ([]byte, error) {
	if _, ok := moveNames[m]; !ok {
		return nil, fmt.Errorf("invalid move %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// OnlyVertical reports whether the move has no horizontal component.
func (m Move) OnlyVertical() bool {
	return m == MoveW || m == MoveS
}

// Horizontal returns the horizontal direction of the move, if any.
func (m Move) Horizontal() (Direction, bool) {
	switch m {
	case MoveD, MoveWD, MoveSD:
		return DirectionE, true
	case MoveA, MoveWA, MoveSA:
		return DirectionW, true
	}
	return DirectionN, false
}

// Vertical returns the vertical direction of the move, if any.
func (m Move) Vertical() (Direction, bool) {
	switch m {
	case MoveW, MoveWA, MoveWD:
		return DirectionN, true
	case MoveS, MoveSA, MoveSD:
		return DirectionS, true
	}
	return DirectionN, false
}

// Moves available by default in each game mode, in expansion order.
var (
	ScrollerMoves   = []Move{MoveNone, MoveA, MoveD, MoveW, MoveWA, MoveWD, MoveS, MoveSA, MoveSD}
	PlatformerMoves = []Move{MoveNone, MoveA, MoveD, MoveW, MoveWA, MoveWD}
)

// ParseMove accepts the names produced by Move.String; "" means no input.
func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return MoveNone, nil
	}
	for m, name := range moveNames {
		if name == s {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("unknown move %q", s)
}

// ParseMoves parses a comma or space separated move list. "all" and the
// empty string yield nil, meaning the mode's default set.
func ParseMoves(s string) ([]Move, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Direction is the player's facing and push direction. N is up.
type Direction int

const (
	DirectionN Direction = iota
	DirectionS
	DirectionE
	DirectionW
)

func (d Direction) String() string {
	switch d {
	case DirectionN:
		return "N"
	case DirectionS:
		return "S"
	case DirectionE:
		return "E"
	case DirectionW:
		return "W"
	}
	return "unknown"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "N":
		*d = DirectionN
	case "S":
		*d = DirectionS
	case "E":
		*d = DirectionE
	case "W":
		*d = DirectionW
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// GameMode selects the movement rules.
type GameMode int

const (
	ModeScroller GameMode = iota
	ModePlatformer
)

func (m GameMode) String() string {
	switch m {
	case ModeScroller:
		return "scroller"
	case ModePlatformer:
		return "platformer"
	}
	return "unknown"
}

func (m GameMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *GameMode) UnmarshalText(text []byte) error {
	parsed, err := ParseGameMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scroller", "side-scroller", "sidescroller":
		return ModeScroller, nil
	case "platformer", "":
		return ModePlatformer, nil
	}
	return ModePlatformer, fmt.Errorf("unknown game mode %q", s)
}

// ObjectType tags static level geometry.
type ObjectType int

const (
	ObjectWall ObjectType = iota
	ObjectSpike
	ObjectSpeedTile
)

func (t ObjectType) String() string {
	switch t {
	case ObjectWall:
		return "wall"
	case ObjectSpike:
		return "spike"
	case ObjectSpeedTile:
		return "speed_tile"
	}
	return "unknown"
}

// Deadly reports whether overlapping the object kills the player.
func (t ObjectType) Deadly() bool {
	return t == ObjectSpike
}
