package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the tuning file looked up in the config directories.
const FileName = "games.yaml"

var (
	activeMu sync.RWMutex
	active   = Default()
)

// Load reads the tuning configuration.
// Search order: customPath -> ~/.starquest/configs/games.yaml -> ./configs/games.yaml -> embedded default.
// Files are applied on top of the defaults, so they only need the keys they change.
func Load(customPath string) (Games, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultGamesYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and sanitizes the result.
func Parse(data []byte) (Games, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize replaces values that would make an engine unplayable.
func (g *Games) sanitize() {
	def := Default()
	if g.Clock.MaxStep <= 0 {
		g.Clock.MaxStep = def.Clock.MaxStep
	}
	if g.Render.PxPerCol <= 0 || g.Render.PxPerRow <= 0 {
		g.Render = def.Render
	}
	// Lane changes need somewhere to go.
	if g.Runner.Lanes < 2 {
		g.Runner.Lanes = def.Runner.Lanes
	}
	if g.Runner.WorldHeight <= 0 {
		g.Runner.WorldHeight = def.Runner.WorldHeight
	}
	if g.Runner.CoinsPerShield < 1 {
		g.Runner.CoinsPerShield = def.Runner.CoinsPerShield
	}
	if g.Memory.SmallBoard < 2 || g.Memory.LargeBoard < g.Memory.SmallBoard {
		g.Memory.SmallBoard, g.Memory.LargeBoard = def.Memory.SmallBoard, def.Memory.LargeBoard
	}
	if len(g.Memory.Pairs) == 0 {
		g.Memory.Pairs = def.Memory.Pairs
	}
	// A board needs one distinct symbol per pair.
	maxPairs := 0
	for _, p := range g.Memory.Pairs {
		maxPairs = max(maxPairs, p)
	}
	if len(g.Memory.Symbols) < maxPairs {
		g.Memory.Symbols = def.Memory.Symbols
		g.Memory.Pairs = def.Memory.Pairs
	}
	// Every pair must fit on the large board or the level cannot be cleared.
	pairs := make([]int, len(g.Memory.Pairs))
	for i, p := range g.Memory.Pairs {
		pairs[i] = min(max(p, 1), g.Memory.LargeBoard/2)
	}
	g.Memory.Pairs = pairs
	if g.Mines.Size < 2 {
		g.Mines.Size = def.Mines.Size
	}
	if g.Mines.Hazards < 1 || g.Mines.Hazards >= g.Mines.Size*g.Mines.Size {
		g.Mines.Hazards = min(def.Mines.Hazards, g.Mines.Size*g.Mines.Size-1)
	}
	if g.Fireworks.MaxParticles < 1 {
		g.Fireworks.MaxParticles = def.Fireworks.MaxParticles
	}
	if g.Fireworks.EmitMax < g.Fireworks.EmitMin {
		g.Fireworks.EmitMin, g.Fireworks.EmitMax = def.Fireworks.EmitMin, def.Fireworks.EmitMax
	}
}

// Use installs cfg as the tuning engines read on Reset.
func Use(cfg Games) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = cfg
}

// Active returns the tuning currently in use.
func Active() Games {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starquest", "configs", filename)
}

// WriteDefault writes the embedded defaults to path, creating parent directories.
// Existing files are left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultGamesYAML, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns where the user-level games.yaml lives.
func UserConfigPath() string {
	return userConfigPath(FileName)
}
