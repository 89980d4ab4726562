package autoscroll

import (
	"math"
	"time"
)

// minScrollChange is the smallest delta applied once an edge is due to
// scroll, so an engaged region always makes visible progress.
const minScrollChange = 1

// speedInput gathers everything needed to compute one edge's scroll change.
type speedInput struct {
	pointer           Vec2
	edge              Edge
	hitbox            Rect
	sinceLastFrame    time.Duration
	engagement        engagement
	now               time.Time
	distanceDampening bool
	cfg               ResolvedConfig
}

// scrollChange returns the signed delta for one frame: negative toward the
// top and left edges, positive toward the bottom and right.
func scrollChange(in speedInput) float64 {
	change := max(maxForFrame(in.cfg, in.sinceLastFrame)*
		distanceFraction(in)*
		timeFraction(in.cfg, in.engagement, in.now), minScrollChange)
	if in.edge.isStart() {
		return -change
	}
	return change
}

// maxForFrame scales the per-second speed to the elapsed frame time. Fast
// displays get proportionally smaller steps; a slow frame never jumps more
// than one nominal 60fps step.
func maxForFrame(cfg ResolvedConfig, elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return min(math.Ceil(cfg.MaxPixelsPerSecond/1000*ms), cfg.maxPerFrame())
}

// distanceFraction is the pointer's progress from the inner boundary of the
// hitbox toward the max-speed buffer at the edge. It reaches 1 on entering
// the buffer.
func distanceFraction(in speedInput) float64 {
	if !in.distanceDampening {
		return 1
	}
	size := in.hitbox.mainAxisSize(in.edge)
	ramp := size - size*in.cfg.MaxSpeedAt.Get(in.edge)
	if ramp <= 0 {
		return 1
	}

	pos := in.pointer.Y
	if in.edge.Axis() == AxisHorizontal {
		pos = in.pointer.X
	}
	inner := in.hitbox.edgeValue(in.edge.opposite())
	// Moving backward: progress runs against the coordinate direction.
	if in.edge.isStart() {
		return clamp01((inner - pos) / ramp)
	}
	return clamp01((pos - inner) / ramp)
}

// timeFraction is how far the engagement is through the time dampening
// window, shaped by the configured easing.
func timeFraction(cfg ResolvedConfig, e engagement, now time.Time) float64 {
	if cfg.TimeDampening <= 0 {
		return 1
	}
	t := clamp01(float64(now.Sub(e.start)) / float64(cfg.TimeDampening))
	if cfg.Easing == nil || t == 0 || t == 1 {
		return t
	}
	return clamp01(float64(cfg.Easing(float32(t), 0, 1, 1)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
