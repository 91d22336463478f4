package systems

import (
	"encoding/json"
	"testing"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestScript() *SavedScript {
	start := core.NewPlayerState(gamemath.V(0, 16), gamemath.Vec{})
	next := start
	next.X = 2.66667
	next.VX = 160
	next.Direction = config.DirectionE
	return &SavedScript{
		Level:    "flat",
		Settings: config.DefaultSearchSettings(config.ModePlatformer),
		Start:    start,
		Target:   core.NewPlayerState(gamemath.V(100, 16), gamemath.Vec{}),
		Steps:    []core.Step{{Move: config.MoveD, Player: next}},
	}
}

func TestScriptJSONUsesReadableEnums(t *testing.T) {
	data, err := json.Marshal(createTestScript())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"move":"D"`)
	assert.Contains(t, string(data), `"mode":"platformer"`)
	assert.Contains(t, string(data), `"direction":"E"`)

	var back SavedScript
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *createTestScript(), back)
}

func TestScriptKeySanitizes(t *testing.T) {
	assert.Equal(t, "script_level_1_run", scriptKey("level 1/run"))
	assert.Equal(t, "script_hop-2", scriptKey("hop-2"))
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, InitPersistence("tasplanner-test"))
	t.Cleanup(func() {
		gdataManager = nil
		gdataInitialized = false
	})

	_, err := LoadScript("nothing")
	assert.ErrorIs(t, err, ErrNoScript)

	script := createTestScript()
	require.NoError(t, SaveScript("flat", script))
	loaded, err := LoadScript("flat")
	require.NoError(t, err)
	assert.Equal(t, script, loaded)

	settings := config.DefaultSearchSettings(config.ModeScroller)
	settings.AllowedMoves = []config.Move{config.MoveW, config.MoveSD}
	require.NoError(t, SaveSettings(settings))
	loadedSettings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loadedSettings)
	assert.Equal(t, settings, *loadedSettings)
}

func TestPersistenceDisabled(t *testing.T) {
	_, err := LoadScript("flat")
	assert.ErrorIs(t, err, ErrNoScript)
	assert.NoError(t, SaveScript("flat", createTestScript()))

	settings, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, settings)
}
