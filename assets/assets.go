package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/tasplanner/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the bundled levels under "levels/".
func FS() fs.FS {
	return assetFS
}

// Dir is the directory of the bundled levels inside FS.
func Dir() string {
	return levelsDir
}

type LevelLoader struct {
	opts leveldata.Options
}

func NewLevelLoader(opts leveldata.Options) *LevelLoader {
	return &LevelLoader{opts: opts}
}

func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.Level, []string) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, levelsDir, l.opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to load bundled levels: %v", err))
	}
	return levels, names
}

func (l *LevelLoader) LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.LoadLevel(assetFS, path.Join(levelsDir, name+".tmx"), l.opts)
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
