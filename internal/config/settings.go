// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Mode selects how levels and waves are produced.
type Mode string

const (
	ModeScripted Mode = "scripted"
	ModeInfinity Mode = "infinity"
)

// Settings are the per-run options a host can override through the environment.
type Settings struct {
	Mode            Mode
	Seed            int64 // 0 picks a time-based seed
	Cols, Rows      int   // 0 picks the mode default
	StartingGold    float64
	BaseHealth      int
	DefinitionsPath string
	LogLevel        slog.Level
	Corners         [][2]int
	Speed           float64 // one of SpeedSteps
}

// Defaults returns the settings of a fresh scripted game.
func Defaults() *Settings {
	return &Settings{
		Mode:         ModeScripted,
		StartingGold: StartingGold,
		BaseHealth:   BaseHealth,
		LogLevel:     slog.LevelInfo,
		Speed:        SpeedSteps[0],
	}
}

// Load reads .env style files (missing files are ignored) into the process
// environment and then builds Settings from TD_* variables.
func Load(files ...string) (*Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds Settings from a lookup function.
func FromEnv(getenv func(string) string) (*Settings, error) {
	s := Defaults()

	if v := getenv("TD_MODE"); v != "" {
		switch Mode(strings.ToLower(v)) {
		case ModeScripted, ModeInfinity:
			s.Mode = Mode(strings.ToLower(v))
		default:
			return nil, fmt.Errorf("TD_MODE: unknown mode %q", v)
		}
	}

	var err error
	if s.Seed, err = int64Var(getenv, "TD_SEED", 0); err != nil {
		return nil, err
	}
	if s.Cols, err = intVar(getenv, "TD_COLS", 0); err != nil {
		return nil, err
	}
	if s.Rows, err = intVar(getenv, "TD_ROWS", 0); err != nil {
		return nil, err
	}
	if s.BaseHealth, err = intVar(getenv, "TD_BASE_HEALTH", BaseHealth); err != nil {
		return nil, err
	}
	if v := getenv("TD_STARTING_GOLD"); v != "" {
		if s.StartingGold, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("TD_STARTING_GOLD: %w", err)
		}
	}
	s.DefinitionsPath = getenv("TD_DEFINITIONS")

	if v := getenv("TD_LOG_LEVEL"); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("TD_LOG_LEVEL: %w", err)
		}
	}
	if v := getenv("TD_CORNERS"); v != "" {
		if s.Corners, err = ParseCorners(v); err != nil {
			return nil, fmt.Errorf("TD_CORNERS: %w", err)
		}
	}

	if v := getenv("TD_SPEED"); v != "" {
		if s.Speed, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("TD_SPEED: %w", err)
		}
		if !ValidSpeed(s.Speed) {
			return nil, fmt.Errorf("TD_SPEED: %v is not one of %v", s.Speed, SpeedSteps)
		}
	}

	if s.Cols < 0 || s.Rows < 0 {
		return nil, fmt.Errorf("grid size must not be negative (%dx%d)", s.Cols, s.Rows)
	}
	return s, nil
}

// ValidSpeed reports whether m is one of SpeedSteps.
func ValidSpeed(m float64) bool {
	for _, step := range SpeedSteps {
		if step == m {
			return true
		}
	}
	return false
}

// ParseCorners parses "c,r;c,r;..." into corner cells.
func ParseCorners(v string) ([][2]int, error) {
	var out [][2]int
	for _, pair := range strings.Split(v, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad corner %q", pair)
		}
		c, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("bad corner %q: %w", pair, err)
		}
		r, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("bad corner %q: %w", pair, err)
		}
		out = append(out, [2]int{c, r})
	}
	return out, nil
}

func intVar(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func int64Var(getenv func(string) string, key string, def int64) (int64, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
