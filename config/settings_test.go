package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("all")
	require.NoError(t, err)
	assert.Nil(t, moves)

	moves, err = ParseMoves("a, WD sd")
	require.NoError(t, err)
	assert.Equal(t, []Move{MoveA, MoveWD, MoveSD}, moves)

	_, err = ParseMoves("A,X")
	assert.Error(t, err)
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, m := range ScrollerMoves {
		got, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestSearchSettingsMoves(t *testing.T) {
	assert.Equal(t, PlatformerMoves, DefaultSearchSettings(ModePlatformer).Moves())
	assert.Equal(t, ScrollerMoves, DefaultSearchSettings(ModeScroller).Moves())

	s := DefaultSearchSettings(ModeScroller)
	s.AllowedMoves = []Move{MoveD}
	assert.Equal(t, []Move{MoveD}, s.Moves())
}

func TestSprintVariants(t *testing.T) {
	s := DefaultSearchSettings(ModePlatformer)
	assert.Equal(t, []bool{false, true}, s.SprintVariants())

	s.AlwaysSprint = true
	assert.Equal(t, []bool{true}, s.SprintVariants())

	s.AlwaysSprint, s.NeverSprint = false, true
	assert.Equal(t, []bool{false}, s.SprintVariants())
}

func TestValidate(t *testing.T) {
	s := DefaultSearchSettings(ModePlatformer)
	require.NoError(t, s.Validate())

	bad := s
	bad.AlwaysSprint, bad.NeverSprint = true, true
	assert.Error(t, bad.Validate())

	bad = s
	bad.Timeout = 0
	assert.Error(t, bad.Validate())

	bad = s
	bad.AllowedMoves = []Move{Move(42)}
	assert.Error(t, bad.Validate())
}

func TestMoveDirections(t *testing.T) {
	d, ok := MoveWA.Horizontal()
	assert.True(t, ok)
	assert.Equal(t, DirectionW, d)

	d, ok = MoveSD.Vertical()
	assert.True(t, ok)
	assert.Equal(t, DirectionS, d)

	_, ok = MoveW.Horizontal()
	assert.False(t, ok)
	assert.True(t, MoveW.OnlyVertical())
	assert.False(t, MoveWD.OnlyVertical())
}
