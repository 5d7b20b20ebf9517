package gameconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config holds the game's tunables.
type Config struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
	DebounceReset  bool          `yaml:"debounce_reset"`
	WatchdogGrace  time.Duration `yaml:"watchdog_grace"`
	DelayMin       time.Duration `yaml:"delay_min"`
	DelayMax       time.Duration `yaml:"delay_max"`
	BlinkNormal    time.Duration `yaml:"blink_normal"`
	BlinkCheating  time.Duration `yaml:"blink_cheating"`
	LogLevel       string        `yaml:"log_level"`
	Display        DisplayConfig `yaml:"display"`
}

type DisplayConfig struct {
	Width      int    `yaml:"width"`
	Rows       int    `yaml:"rows"`
	Color      bool   `yaml:"color"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DebounceWindow: 200 * time.Millisecond,
		DebounceReset:  false,
		WatchdogGrace:  0,
		DelayMin:       1000 * time.Millisecond,
		DelayMax:       5000 * time.Millisecond,
		BlinkNormal:    100 * time.Millisecond,
		BlinkCheating:  500 * time.Millisecond,
		LogLevel:       "info",
		Display: DisplayConfig{
			Width:      24,
			Rows:       6,
			Color:      false,
			Background: "white",
			Text:       "darkblue",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and REACTION_* environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewConfigFromEnv reads REACTION_* environment variables over the defaults.
func NewConfigFromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DebounceWindow = getEnvAsDuration("REACTION_DEBOUNCE_WINDOW", c.DebounceWindow)
	c.DebounceReset = getEnvAsBool("REACTION_DEBOUNCE_RESET", c.DebounceReset)
	c.WatchdogGrace = getEnvAsDuration("REACTION_WATCHDOG_GRACE", c.WatchdogGrace)
	c.DelayMin = getEnvAsDuration("REACTION_DELAY_MIN", c.DelayMin)
	c.DelayMax = getEnvAsDuration("REACTION_DELAY_MAX", c.DelayMax)
	c.BlinkNormal = getEnvAsDuration("REACTION_BLINK_NORMAL", c.BlinkNormal)
	c.BlinkCheating = getEnvAsDuration("REACTION_BLINK_CHEATING", c.BlinkCheating)
	c.LogLevel = getEnv("REACTION_LOG_LEVEL", c.LogLevel)
	c.Display.Width = getEnvAsInt("REACTION_DISPLAY_WIDTH", c.Display.Width)
	c.Display.Rows = getEnvAsInt("REACTION_DISPLAY_ROWS", c.Display.Rows)
	c.Display.Color = getEnvAsBool("REACTION_DISPLAY_COLOR", c.Display.Color)
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	positive := []struct {
		name string
		d    time.Duration
	}{
		{"debounce_window", c.DebounceWindow},
		{"delay_min", c.DelayMin},
		{"delay_max", c.DelayMax},
		{"blink_normal", c.BlinkNormal},
		{"blink_cheating", c.BlinkCheating},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, p.name, p.d)
		}
	}
	if c.WatchdogGrace < 0 {
		return fmt.Errorf("%w: watchdog_grace must not be negative, got %s", ErrInvalidConfig, c.WatchdogGrace)
	}
	if c.DelayMin >= c.DelayMax {
		return fmt.Errorf("%w: delay_min %s must be below delay_max %s", ErrInvalidConfig, c.DelayMin, c.DelayMax)
	}
	if c.Display.Width <= 0 || c.Display.Rows <= 0 {
		return fmt.Errorf("%w: display must have positive width and rows, got %dx%d", ErrInvalidConfig, c.Display.Width, c.Display.Rows)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring non-integer environment value")
		return fallback
	}
	return n
}

func getEnvAsBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring non-boolean environment value")
		return fallback
	}
	return b
}

// getEnvAsDuration accepts Go durations ("250ms") or bare milliseconds ("250").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring invalid duration environment value")
		return fallback
	}
	return d
}
