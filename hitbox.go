package autoscroll

import "fmt"

// EdgeReach describes how far beyond one edge an overflow region reaches.
// The value for the declared edge is the outward reach along the main axis;
// the two cross-axis values widen the hitboxes sideways. The value for the
// edge opposite the declared one is not allowed: a region cannot reach back
// into itself.
type EdgeReach struct {
	Top    float64 `yaml:"top" validate:"gte=0"`
	Right  float64 `yaml:"right" validate:"gte=0"`
	Bottom float64 `yaml:"bottom" validate:"gte=0"`
	Left   float64 `yaml:"left" validate:"gte=0"`
}

func (r EdgeReach) get(e Edge) float64 {
	return EdgeValues(r).Get(e)
}

// Overflow declares the outward reach of an overflow registration, per edge.
// Nil edges have no reach.
type Overflow struct {
	FromTopEdge    *EdgeReach `yaml:"from_top_edge"`
	FromRightEdge  *EdgeReach `yaml:"from_right_edge"`
	FromBottomEdge *EdgeReach `yaml:"from_bottom_edge"`
	FromLeftEdge   *EdgeReach `yaml:"from_left_edge"`
}

// reach returns the reach declared for edge e, or the zero reach.
func (o Overflow) reach(e Edge) EdgeReach {
	var r *EdgeReach
	switch e {
	case EdgeTop:
		r = o.FromTopEdge
	case EdgeRight:
		r = o.FromRightEdge
	case EdgeBottom:
		r = o.FromBottomEdge
	case EdgeLeft:
		r = o.FromLeftEdge
	}
	if r == nil {
		return EdgeReach{}
	}
	return *r
}

// Validate reports a reach that sets a value for the edge opposite its
// declared edge.
func (o Overflow) Validate() error {
	for _, e := range edges {
		if v := o.reach(e).get(e.opposite()); v != 0 {
			return fmt.Errorf("overflow from %s edge: %s reach %v not allowed", e, e.opposite(), v)
		}
	}
	return nil
}

// overRegionHitbox returns the hitbox anchored at edge e of rect. Its
// main-axis size is the configured fraction of the region, capped at
// MaxHitboxSize; it spans the full cross axis.
func overRegionHitbox(e Edge, rect Rect, cfg ResolvedConfig) Rect {
	size := min(cfg.StartHitboxAt.Get(e)*rect.mainAxisSize(e), cfg.MaxHitboxSize)
	switch e {
	case EdgeTop:
		return Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: size}
	case EdgeBottom:
		return Rect{X: rect.X, Y: rect.Bottom() - size, Width: rect.Width, Height: size}
	case EdgeLeft:
		return Rect{X: rect.X, Y: rect.Y, Width: size, Height: rect.Height}
	default:
		return Rect{X: rect.Right() - size, Y: rect.Y, Width: size, Height: rect.Height}
	}
}

// overflowHitbox pairs the zone just inside an edge with the zone beyond it.
type overflowHitbox struct {
	insideOfEdge  Rect
	outsideOfEdge Rect
}

// overflowHitboxes returns the inside and outside hitboxes for edge e.
// Both are widened on the cross axis by the reach's cross-axis values.
func overflowHitboxes(e Edge, rect Rect, reach EdgeReach, cfg ResolvedConfig) overflowHitbox {
	inside := overRegionHitbox(e, rect, cfg)
	main := reach.get(e)

	var outside Rect
	switch e {
	case EdgeTop:
		outside = Rect{X: rect.X, Y: rect.Top() - main, Width: rect.Width, Height: main}
	case EdgeBottom:
		outside = Rect{X: rect.X, Y: rect.Bottom(), Width: rect.Width, Height: main}
	case EdgeLeft:
		outside = Rect{X: rect.Left() - main, Y: rect.Y, Width: main, Height: rect.Height}
	default:
		outside = Rect{X: rect.Right(), Y: rect.Y, Width: main, Height: rect.Height}
	}

	return overflowHitbox{
		insideOfEdge:  expandCrossAxis(inside, e, reach),
		outsideOfEdge: expandCrossAxis(outside, e, reach),
	}
}

// expandCrossAxis grows r along the axis parallel to edge e.
func expandCrossAxis(r Rect, e Edge, reach EdgeReach) Rect {
	if e.Axis() == AxisVertical {
		r.X -= reach.Left
		r.Width += reach.Left + reach.Right
		return r
	}
	r.Y -= reach.Top
	r.Height += reach.Top + reach.Bottom
	return r
}
