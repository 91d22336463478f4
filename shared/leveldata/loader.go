package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

const (
	wallLayer = "walls"

	groupWalls        = "Walls"
	groupSpikes       = "Spikes"
	groupSpeedTiles   = "SpeedTiles"
	groupEnvironments = "Environments"
	groupStart        = "Start"
	groupTarget       = "Target"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Mode:      levelMap.Properties.GetString("mode"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(level.MapHeight)

	// Solid tiles, merged into one rectangle per horizontal run
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != wallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				if solid && runStart < 0 {
					runStart = x
				}
				if !solid && runStart >= 0 {
					level.Walls = append(level.Walls, Shape{
						Outline: rect(float64(runStart)*tileW, mapH-float64(y+1)*tileH, float64(x)*tileW, mapH-float64(y)*tileH),
					})
					runStart = -1
				}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, objectShape(o, mapH, 0))
			}
		case groupSpikes:
			for _, o := range og.Objects {
				level.Spikes = append(level.Spikes, objectShape(o, mapH, opts.ExtendDeadly))
			}
		case groupSpeedTiles:
			for _, o := range og.Objects {
				level.SpeedTiles = append(level.SpeedTiles, objectShape(o, mapH, 0))
			}
		case groupEnvironments:
			for _, o := range og.Objects {
				level.Environments = append(level.Environments, Environment{
					Shape:        objectShape(o, mapH, 0),
					Gravity:      floatProperty(o.Properties, "gravity", 1),
					JumpSpeed:    floatProperty(o.Properties, "jump_speed", 1),
					WalkSpeed:    floatProperty(o.Properties, "walk_speed", 1),
					JumpOverride: o.Properties.GetBool("jump_override"),
				})
			}
		case groupStart:
			if len(og.Objects) > 0 {
				p := objectPoint(og.Objects[0], mapH)
				level.Start = &p
			}
		case groupTarget:
			if len(og.Objects) > 0 {
				p := objectPoint(og.Objects[0], mapH)
				level.Target = &p
			}
		}
	}

	return level, nil
}

// MustLoadLevel is like LoadLevel but panics on error.
func MustLoadLevel(fsys fs.FS, tmxPath string, opts Options) *Level {
	level, err := LoadLevel(fsys, tmxPath, opts)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, opts Options) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		level, err := LoadLevel(fsys, p, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// objectShape converts a rectangle or polygon object. grow only applies to
// rectangles.
func objectShape(o *tiled.Object, mapH, grow float64) Shape {
	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		points := *o.Polygons[0].Points
		outline := make([]math.Vec2, len(points))
		for i, point := range points {
			outline[i] = math.Vec2{X: o.X + point.X, Y: mapH - (o.Y + point.Y)}
		}
		return Shape{Name: o.Name, Outline: outline}
	}

	return Shape{
		Name:    o.Name,
		Outline: rect(o.X-grow, mapH-(o.Y+o.Height)-grow, o.X+o.Width+grow, mapH-o.Y+grow),
	}
}

// objectPoint is the position of a point object or the center of any other.
func objectPoint(o *tiled.Object, mapH float64) math.Vec2 {
	return math.Vec2{X: o.X + o.Width/2, Y: mapH - (o.Y + o.Height/2)}
}

func rect(x1, y1, x2, y2 float64) []math.Vec2 {
	return []math.Vec2{{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2}}
}

func floatProperty(props tiled.Properties, name string, def float64) float64 {
	for _, p := range props {
		if p.Name == name {
			return props.GetFloat(name)
		}
	}
	return def
}
