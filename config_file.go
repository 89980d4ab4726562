package autoscroll

import (
	"fmt"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// easings maps config file names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
}

// FileConfig is the YAML form of Config.
//
//	start_hitbox_at: {top: 0.25, right: 0.25, bottom: 0.25, left: 0.25}
//	max_speed_at: {top: 0.5, right: 0.5, bottom: 0.5, left: 0.5}
//	max_scroll_speed: fast
//	time_dampening_ms: 300
//	max_hitbox_size: 200
//	easing: in-quad
type FileConfig struct {
	StartHitboxAt      *EdgeValues `yaml:"start_hitbox_at"`
	MaxSpeedAt         *EdgeValues `yaml:"max_speed_at"`
	MaxScrollSpeed     string      `yaml:"max_scroll_speed" validate:"omitempty,oneof=standard fast"`
	MaxPixelsPerSecond float64     `yaml:"max_pixels_per_second" validate:"gte=0"`
	TimeDampeningMs    int         `yaml:"time_dampening_ms" validate:"gte=0"`
	MaxHitboxSize      float64     `yaml:"max_hitbox_size" validate:"gte=0"`
	Easing             string      `yaml:"easing" validate:"omitempty,oneof=linear in-quad out-quad in-out-quad in-cubic out-cubic in-out-cubic in-sine out-sine"`
}

// Config converts the file form into caller overrides. The receiver must
// already be validated.
func (fc FileConfig) Config() Config {
	c := Config{
		StartHitboxAt:      fc.StartHitboxAt,
		MaxSpeedAt:         fc.MaxSpeedAt,
		MaxPixelsPerSecond: fc.MaxPixelsPerSecond,
		TimeDampening:      time.Duration(fc.TimeDampeningMs) * time.Millisecond,
		MaxHitboxSize:      fc.MaxHitboxSize,
		Easing:             easings[fc.Easing],
	}
	if fc.MaxScrollSpeed == "fast" {
		c.MaxScrollSpeed = SpeedFast
	}
	return c
}

// ParseConfig decodes and validates a YAML config document.
func ParseConfig(data []byte) (Config, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validateStruct(fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return fc.Config(), nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
