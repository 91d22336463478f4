package systems

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
	"github.com/automoto/tasplanner/pathfinding"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/automoto/tasplanner/shared/leveldata"
	"github.com/automoto/tasplanner/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func createTestLevel(t *testing.T) *ecs.ECS {
	t.Helper()
	data, err := leveldata.LoadLevel(os.DirFS("../shared/leveldata/testdata"), "levels/hop.tmx", leveldata.Options{})
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	_, err = factory.CreateLevel(e, data)
	require.NoError(t, err)
	return e
}

func TestBuildStaticState(t *testing.T) {
	e := createTestLevel(t)

	static, err := BuildStaticState(e.World)
	require.NoError(t, err)

	require.Len(t, static.Solids, 5)
	assert.Len(t, static.Lethal, 1)
	assert.Len(t, static.SpeedTiles, 1)
	require.Len(t, static.Environments, 1)

	// Spawn order is kept: the ground row precedes the pillar.
	ground := static.Solids[2].Hitbox
	assert.Equal(t, 0.0, ground.Left())
	assert.Equal(t, 320.0, ground.Right())
	assert.Equal(t, 32.0, ground.High())
	assert.Equal(t, 256.0, static.Solids[3].Hitbox.Left())
	assert.Equal(t, 3, static.Solids[4].Hitbox.Len())

	env := static.Environments[0]
	assert.Equal(t, "floaty", env.Name)
	assert.Equal(t, 0.5, env.Gravity)
	assert.True(t, env.JumpOverride)
}

func TestBuildStaticStateKeepsInterleavedOrder(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateLevel(e, &leveldata.Level{Name: "empty"})
	require.NoError(t, err)

	square := func(x float64) []math.Vec2 {
		return []math.Vec2{{X: x, Y: 0}, {X: x + 10, Y: 0}, {X: x + 10, Y: 10}, {X: x, Y: 10}}
	}
	_, err = factory.CreateSpike(e, "s", square(100))
	require.NoError(t, err)
	_, err = factory.CreateWall(e, "a", square(0))
	require.NoError(t, err)
	_, err = factory.CreateWall(e, "b", square(50))
	require.NoError(t, err)

	static, err := BuildStaticState(e.World)
	require.NoError(t, err)
	require.Len(t, static.Solids, 2)
	assert.Equal(t, 0.0, static.Solids[0].Hitbox.Left())
	assert.Equal(t, 50.0, static.Solids[1].Hitbox.Left())
	assert.Len(t, static.Lethal, 1)
}

func TestFactoryRejectsConcaveOutline(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	arrow := []math.Vec2{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 10}, {X: 3, Y: 5}}

	_, err := factory.CreateWall(e, "arrow", arrow)
	assert.ErrorIs(t, err, gamemath.ErrNotConvex)
}

func TestCreateLevelRejectsUnknownMode(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateLevel(e, &leveldata.Level{Name: "odd", Mode: "racing"})
	assert.Error(t, err)
}

func TestLevelEndpoints(t *testing.T) {
	_, err := LevelEndpoints(donburi.NewWorld())
	assert.ErrorIs(t, err, ErrNoLevel)

	info, err := LevelEndpoints(createTestLevel(t).World)
	require.NoError(t, err)
	assert.Equal(t, "hop", info.Name)
	assert.Equal(t, config.ModePlatformer, info.Mode)
	require.NotNil(t, info.Start)
	require.NotNil(t, info.Target)
	assert.Equal(t, 48.0, info.Start.X)
	assert.Equal(t, 224.0, info.Target.X)
}

func TestPlanLoadedLevel(t *testing.T) {
	e := createTestLevel(t)
	static, err := BuildStaticState(e.World)
	require.NoError(t, err)
	info, err := LevelEndpoints(e.World)
	require.NoError(t, err)

	settings := config.DefaultSearchSettings(info.Mode)
	settings.Timeout = 30 * time.Second
	res := pathfinding.Search(context.Background(), settings, *info.Start, *info.Target, static)
	require.True(t, res.Found)

	script := &SavedScript{Level: info.Name, Settings: settings, Start: *info.Start, Target: *info.Target, Steps: res.Steps}
	assert.Equal(t, -1, ValidateScript(script, static))

	final := res.Steps[len(res.Steps)-1].Player
	assert.True(t, final.CloseTo(core.PlayerState{X: info.Target.X, Y: info.Target.Y}, settings.TargetPrecision))
}
