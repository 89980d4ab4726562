package autoscroll

import (
	"time"

	"github.com/tanema/gween/ease"
)

// ScrollSpeed selects a preset maximum scroll speed.
type ScrollSpeed uint8

const (
	SpeedStandard ScrollSpeed = iota // 900 px/s, 15px per frame at 60fps
	SpeedFast                        // 1800 px/s
)

const (
	standardPixelsPerSecond = 900
	fastPixelsPerSecond     = 1800

	defaultTimeDampening = 300 * time.Millisecond
	defaultMaxHitboxSize = 200

	// nominalFrameRate caps a single frame's scroll to what one 60fps frame
	// would produce, however long the frame took.
	nominalFrameRate = 60
)

var (
	defaultStartHitboxAt = UniformEdges(0.25)
	defaultMaxSpeedAt    = UniformEdges(0.5)
)

// Config holds caller overrides. Zero-valued fields fall back to defaults.
type Config struct {
	// StartHitboxAt is, per edge, the fraction of the region's main-axis size
	// the edge hitbox covers (before MaxHitboxSize caps it).
	StartHitboxAt *EdgeValues
	// MaxSpeedAt is, per edge, the fraction of the hitbox nearest the edge
	// in which scrolling runs at full speed.
	MaxSpeedAt *EdgeValues
	// MaxScrollSpeed picks a preset speed. Ignored when MaxPixelsPerSecond is set.
	MaxScrollSpeed ScrollSpeed
	// MaxPixelsPerSecond sets the top speed directly.
	MaxPixelsPerSecond float64
	// TimeDampening is how long a fresh engagement takes to reach full speed.
	TimeDampening time.Duration
	// MaxHitboxSize caps every edge hitbox's main-axis size in pixels.
	MaxHitboxSize float64
	// Easing reshapes the time dampening curve. Nil is linear.
	Easing ease.TweenFunc
}

// ResolvedConfig is a Config with every value populated.
type ResolvedConfig struct {
	StartHitboxAt      EdgeValues
	MaxSpeedAt         EdgeValues
	MaxPixelsPerSecond float64
	TimeDampening      time.Duration
	MaxHitboxSize      float64
	Easing             ease.TweenFunc
}

// DefaultConfig returns the configuration used when a registration supplies
// no overrides.
func DefaultConfig() ResolvedConfig {
	return ResolvedConfig{
		StartHitboxAt:      defaultStartHitboxAt,
		MaxSpeedAt:         defaultMaxSpeedAt,
		MaxPixelsPerSecond: standardPixelsPerSecond,
		TimeDampening:      defaultTimeDampening,
		MaxHitboxSize:      defaultMaxHitboxSize,
	}
}

// Resolve merges the overrides in c over the defaults.
func (c Config) Resolve() ResolvedConfig {
	rc := DefaultConfig()
	if c.StartHitboxAt != nil {
		rc.StartHitboxAt = *c.StartHitboxAt
	}
	if c.MaxSpeedAt != nil {
		rc.MaxSpeedAt = *c.MaxSpeedAt
	}
	if c.MaxScrollSpeed == SpeedFast {
		rc.MaxPixelsPerSecond = fastPixelsPerSecond
	}
	if c.MaxPixelsPerSecond > 0 {
		rc.MaxPixelsPerSecond = c.MaxPixelsPerSecond
	}
	if c.TimeDampening > 0 {
		rc.TimeDampening = c.TimeDampening
	}
	if c.MaxHitboxSize > 0 {
		rc.MaxHitboxSize = c.MaxHitboxSize
	}
	if c.Easing != nil {
		rc.Easing = c.Easing
	}
	return rc
}

// maxPerFrame is the largest delta a single frame may produce.
func (rc ResolvedConfig) maxPerFrame() float64 {
	return rc.MaxPixelsPerSecond / nominalFrameRate
}

// resolveConfig evaluates an optional GetConfiguration callback.
func resolveConfig(get func(Feedback) Config, fb Feedback) ResolvedConfig {
	if get == nil {
		return DefaultConfig()
	}
	return get(fb).Resolve()
}
