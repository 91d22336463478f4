package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path"
	"strconv"
	"strings"
	"syscall"

	"github.com/automoto/tasplanner/assets"
	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
	"github.com/automoto/tasplanner/pathfinding"
	"github.com/automoto/tasplanner/shared/gamemath"
	"github.com/automoto/tasplanner/shared/leveldata"
	"github.com/automoto/tasplanner/systems"
	"github.com/automoto/tasplanner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	levelsDir := flag.String("levels", "", "Directory containing .tmx levels (default: bundled levels)")
	levelName := flag.String("level", "", "Level to plan on (file stem)")
	list := flag.Bool("list", false, "List available levels and exit")
	mode := flag.String("mode", "", "Game mode override: platformer or scroller")
	start := flag.String("start", "", "Start position x,y (default: level Start object)")
	target := flag.String("target", "", "Target position x,y (default: level Target object)")
	extendDeadly := flag.Float64("extend-deadly", 0, "Grow spikes by this much on every side")

	timeout := flag.Duration("timeout", config.Search.Timeout, "Search time budget")
	moves := flag.String("moves", "all", "Allowed moves, e.g. \"A,D,WD\"")
	alwaysSprint := flag.Bool("always-sprint", false, "Hold sprint on every tick")
	neverSprint := flag.Bool("never-sprint", false, "Never sprint")
	weight := flag.Float64("weight", config.Search.HeuristicWeight, "Heuristic weight")
	precision := flag.Float64("precision", config.Search.TargetPrecision, "Goal tolerance per axis")
	workers := flag.Int("workers", 1, "Parallel neighbour expansion")
	simpleGeometry := flag.Bool("simple-geometry", false, "Round positions when comparing states")
	vpush := flag.Bool("vpush", false, "Distinguish states by push speed and control")
	sprintVertical := flag.Bool("sprint-vertical", false, "Sprint also speeds up scroller vertical moves")
	precheck := flag.Bool("precheck", false, "Give up early when no coarse route exists")
	verbose := flag.Bool("verbose", false, "Log search progress")

	app := flag.String("app", "tasplanner", "Storage name for saved scripts and settings")
	save := flag.String("save", "", "Save the planned script under this name")
	replay := flag.String("replay", "", "Replay a saved script and report whether it still holds")
	loadSettings := flag.Bool("load-settings", false, "Start from saved settings; explicit flags still apply")
	saveSettings := flag.Bool("save-settings", false, "Save the effective settings")
	flag.Parse()

	opts := leveldata.Options{ExtendDeadly: *extendDeadly}
	fsys, root := assets.FS(), assets.Dir()
	if *levelsDir != "" {
		fsys, root = os.DirFS(*levelsDir), "."
	}

	if *list {
		_, names, err := leveldata.LoadAllLevels(fsys, root, opts)
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *levelName == "" {
		log.Fatalf("No level given; use -level or -list")
	}

	data, err := leveldata.LoadLevel(fsys, path.Join(root, *levelName+".tmx"), opts)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	if *mode != "" {
		data.Mode = *mode
	}

	world := ecs.NewECS(donburi.NewWorld())
	if _, err := factory.CreateLevel(world, data); err != nil {
		log.Fatalf("Failed to create level: %v", err)
	}
	static, err := systems.BuildStaticState(world.World)
	if err != nil {
		log.Fatalf("Failed to build level geometry: %v", err)
	}
	info, err := systems.LevelEndpoints(world.World)
	if err != nil {
		log.Fatalf("Failed to read level: %v", err)
	}

	if *save != "" || *replay != "" || *loadSettings || *saveSettings {
		if err := systems.InitPersistence(*app); err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
	}

	if *replay != "" {
		script, err := systems.LoadScript(*replay)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		if i := systems.ValidateScript(script, static); i >= 0 {
			log.Fatalf("Script %s diverges at tick %d (%s)", *replay, i, script.Steps[i].Move)
		}
		log.Printf("Script %s replays cleanly (%d ticks)", *replay, len(script.Steps))
		printScript(script.Steps)
		return
	}

	settings := config.DefaultSearchSettings(info.Mode)
	if *loadSettings {
		saved, err := systems.LoadSettings()
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		if saved != nil {
			settings = *saved
			settings.Physics.Mode = info.Mode
		}
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	apply := func(name string, fn func()) {
		if set[name] || !*loadSettings {
			fn()
		}
	}
	apply("timeout", func() { settings.Timeout = *timeout })
	apply("moves", func() {
		allowed, err := config.ParseMoves(*moves)
		if err != nil {
			log.Fatalf("Invalid -moves: %v", err)
		}
		settings.AllowedMoves = allowed
	})
	apply("always-sprint", func() { settings.AlwaysSprint = *alwaysSprint })
	apply("never-sprint", func() { settings.NeverSprint = *neverSprint })
	apply("weight", func() { settings.HeuristicWeight = *weight })
	apply("precision", func() { settings.TargetPrecision = *precision })
	apply("workers", func() { settings.Workers = *workers })
	apply("simple-geometry", func() { settings.Physics.SimpleGeometry = *simpleGeometry })
	apply("vpush", func() { settings.Physics.EnableVPush = *vpush })
	apply("sprint-vertical", func() { settings.Physics.SprintVertical = *sprintVertical })
	apply("precheck", func() { settings.Precheck = *precheck })
	apply("verbose", func() { settings.Verbose = *verbose })

	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	if *saveSettings {
		if err := systems.SaveSettings(settings); err != nil {
			log.Fatalf("Failed to save settings: %v", err)
		}
	}

	initial, err := endpoint(*start, info.Start, "start")
	if err != nil {
		log.Fatal(err)
	}
	goal, err := endpoint(*target, info.Target, "target")
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res := pathfinding.Search(ctx, settings, initial, goal, static)
	if !res.Found {
		log.Printf("No path found on level %s", info.Name)
		stop()
		os.Exit(1)
	}
	printScript(res.Steps)

	if *save != "" {
		script := &systems.SavedScript{
			Level:    info.Name,
			Settings: settings,
			Start:    initial,
			Target:   goal,
			Steps:    res.Steps,
		}
		if err := systems.SaveScript(*save, script); err != nil {
			log.Fatalf("Failed to save script: %v", err)
		}
		log.Printf("Saved script %s (%d ticks)", *save, len(res.Steps))
	}
}

// endpoint prefers an explicit "x,y" flag over the level's own point.
func endpoint(flagValue string, fromLevel *core.PlayerState, what string) (core.PlayerState, error) {
	if flagValue == "" {
		if fromLevel == nil {
			return core.PlayerState{}, fmt.Errorf("level has no %s; pass -%s x,y", what, what)
		}
		return *fromLevel, nil
	}
	p, err := parsePoint(flagValue)
	if err != nil {
		return core.PlayerState{}, fmt.Errorf("invalid -%s: %w", what, err)
	}
	return core.NewPlayerState(p, gamemath.Vec{}), nil
}

func parsePoint(s string) (gamemath.Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gamemath.Vec{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return gamemath.Vec{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return gamemath.Vec{}, err
	}
	return gamemath.V(x, y), nil
}

func printScript(steps []core.Step) {
	for i, s := range steps {
		sprint := ""
		if s.Sprint {
			sprint = "+sprint"
		}
		fmt.Printf("%4d %-4s %-7s x=%.5f y=%.5f\n", i, s.Move, sprint, s.Player.X, s.Player.Y)
	}
}
