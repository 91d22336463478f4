package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/automoto/tasplanner/config"
	"github.com/automoto/tasplanner/core"
	"github.com/quasilyte/gdata"
)

// ErrNoScript is returned when no script is stored under a name.
var ErrNoScript = errors.New("no saved script")

// SavedScript is a planned input script with what is needed to replay it.
type SavedScript struct {
	Level    string                `json:"level"`
	Settings config.SearchSettings `json:"settings"`
	Start    core.PlayerState      `json:"start"`
	Target   core.PlayerState      `json:"target"`
	Steps    []core.Step           `json:"steps"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for script and settings
// storage.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func scriptKey(name string) string {
	return "script_" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}

// SaveScript stores a script under name. It is a no-op when persistence is
// not initialized.
func SaveScript(name string, script *SavedScript) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(script)
	if err != nil {
		log.Printf("Warning: Could not serialize script: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(scriptKey(name), data); err != nil {
		log.Printf("Warning: Could not save script: %v", err)
		return err
	}
	return nil
}

// LoadScript returns ErrNoScript when nothing is stored under name.
func LoadScript(name string) (*SavedScript, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, ErrNoScript
	}

	data, err := gdataManager.LoadItem(scriptKey(name))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrNoScript, name, err)
	}
	if len(data) == 0 {
		return nil, ErrNoScript
	}

	var script SavedScript
	if err := json.Unmarshal(data, &script); err != nil {
		log.Printf("Warning: Could not parse saved script: %v", err)
		return nil, err
	}
	return &script, nil
}

// LoadSettings returns nil when no settings were saved.
func LoadSettings() (*config.SearchSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings config.SearchSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s config.SearchSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ValidateScript replays a saved script from its start. It returns the
// index of the first step that no longer reproduces, or -1.
func ValidateScript(script *SavedScript, static *core.StaticState) int {
	start := static.DetectModifier(core.NewPhysState(script.Start, script.Settings.Physics))
	_, mismatch := core.NewStepper(static, nil).Replay(start, script.Steps)
	return mismatch
}
