package assets

import (
	"testing"

	"github.com/automoto/tasplanner/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevels(t *testing.T) {
	loader := NewLevelLoader(leveldata.Options{})
	levels, names := loader.MustLoadLevels()

	assert.Equal(t, []string{"corridor", "steps"}, names)
	for _, name := range names {
		level := levels[name]
		require.NotNil(t, level.Start, name)
		require.NotNil(t, level.Target, name)
		assert.NotEmpty(t, level.Walls, name)
	}

	assert.Equal(t, "scroller", levels["corridor"].Mode)
	assert.Equal(t, "platformer", levels["steps"].Mode)
}

func TestLoadBundledLevel(t *testing.T) {
	loader := NewLevelLoader(leveldata.Options{ExtendDeadly: 1})

	level := loader.MustLoadLevel("steps")
	require.Len(t, level.Spikes, 1)
	// 224..256 x 32..48, grown by one on every side
	assert.Equal(t, 223.0, level.Spikes[0].Outline[0].X)
	assert.Equal(t, 31.0, level.Spikes[0].Outline[0].Y)

	_, err := loader.LoadLevel("missing")
	assert.Error(t, err)
	assert.Panics(t, func() { loader.MustLoadLevel("missing") })
}
