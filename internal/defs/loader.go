// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Library is the set of tables a game runs with.
type Library struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[EnemyKind]EnemyDefinition
	Waves   []WaveDefinition
}

// DefaultLibrary returns a fresh copy of the built-in tables.
func DefaultLibrary() *Library {
	return &Library{
		Towers:  defaultTowers(),
		Enemies: defaultEnemies(),
		Waves:   defaultWaves(),
	}
}

// Tower looks up an archetype.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, error) {
	def, ok := l.Towers[kind]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("tower %q: %w", kind, ErrUnknownKind)
	}
	return def, nil
}

// Enemy looks up an enemy tier.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, error) {
	def, ok := l.Enemies[kind]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("enemy %q: %w", kind, ErrUnknownKind)
	}
	return def, nil
}

type waveFile struct {
	Enemies    []EnemyKind `yaml:"enemies"`
	IntervalMS int         `yaml:"interval_ms"`
	Boss       bool        `yaml:"boss"`
}

type libraryFile struct {
	Towers  []TowerDefinition `yaml:"towers"`
	Enemies []EnemyDefinition `yaml:"enemies"`
	Waves   []waveFile        `yaml:"waves"`
}

// LoadLibrary reads a YAML (or JSON) overrides file on top of the built-in
// tables. Tower and enemy entries override only the fields they set; a
// non-empty waves list replaces the authored script.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseLibrary(data)
}

// LoadOrDefault loads path, or returns the built-in tables when path is empty.
func LoadOrDefault(path string) (*Library, error) {
	if path == "" {
		return DefaultLibrary(), nil
	}
	return LoadLibrary(path)
}

// ParseLibrary applies overrides from YAML bytes to the built-in tables.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := DefaultLibrary()
	for _, o := range file.Towers {
		def, err := lib.Tower(o.Kind)
		if err != nil {
			return nil, err
		}
		mergeFloat(&def.Damage, o.Damage)
		mergeFloat(&def.Range, o.Range)
		mergeFloat(&def.Cooldown, o.Cooldown)
		mergeFloat(&def.UpgradeCost, o.UpgradeCost)
		mergeFloat(&def.BuildCost, o.BuildCost)
		if o.Strategy != "" {
			switch o.Strategy {
			case StrategyFirst, StrategyClosest, StrategyStrongest:
				def.Strategy = o.Strategy
			default:
				return nil, fmt.Errorf("tower %q strategy %q: %w", o.Kind, o.Strategy, ErrUnknownKind)
			}
		}
		lib.Towers[o.Kind] = def
	}

	for _, o := range file.Enemies {
		def, err := lib.Enemy(o.Kind)
		if err != nil {
			return nil, err
		}
		mergeFloat(&def.Health, o.Health)
		mergeFloat(&def.Speed, o.Speed)
		mergeFloat(&def.Bounty, o.Bounty)
		if o.Damage != 0 {
			def.Damage = o.Damage
		}
		lib.Enemies[o.Kind] = def
	}

	if len(file.Waves) > 0 {
		waves := make([]WaveDefinition, 0, len(file.Waves))
		for i, w := range file.Waves {
			if w.IntervalMS <= 0 {
				return nil, fmt.Errorf("wave %d: interval_ms must be positive", i)
			}
			for _, k := range w.Enemies {
				if _, err := lib.Enemy(k); err != nil {
					return nil, fmt.Errorf("wave %d: %w", i, err)
				}
			}
			waves = append(waves, WaveDefinition{
				Enemies:    w.Enemies,
				Interval:   time.Duration(w.IntervalMS) * time.Millisecond,
				IsBossWave: w.Boss,
			})
		}
		lib.Waves = waves
	}

	return lib, nil
}

func mergeFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
