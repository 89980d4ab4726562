package autoscroll

import "slices"

// RegionOptions customizes a registration. All callbacks are optional and
// must not have side effects; they run every frame.
type RegionOptions struct {
	// CanScroll vetoes scrolling of the region for this frame.
	CanScroll func(Feedback) bool
	// GetConfiguration returns overrides merged over the defaults.
	GetConfiguration func(Feedback) Config
}

func (o RegionOptions) canScroll(fb Feedback) bool {
	return o.CanScroll == nil || o.CanScroll(fb)
}

type registration struct {
	node *Node
	opts RegionOptions
}

// windowRegistration is compared by pointer, so identical options registered
// twice are still two registrations.
type windowRegistration struct {
	opts RegionOptions
}

// availableAxes marks which axes are still unclaimed in the current frame.
type availableAxes [2]bool

func (a availableAxes) any() bool {
	return a[AxisVertical] || a[AxisHorizontal]
}

// OverRegionScroller scrolls the registered regions the pointer is over.
// Each frame it walks outward from the node under the pointer; the innermost
// region able to scroll on an axis claims it, and no other region scrolls on
// that axis during the frame. Axes nobody claimed fall through to the window.
type OverRegionScroller struct {
	ctx  *Context
	kind SourceKind

	regions map[*Node]*registration
	windows []*windowRegistration
}

func newOverRegionScroller(ctx *Context, sched *Scheduler) *OverRegionScroller {
	o := &OverRegionScroller{
		ctx:     ctx,
		kind:    sched.Kind(),
		regions: make(map[*Node]*registration),
	}
	sched.OnFrame(o.onFrame)
	return o
}

// Register makes n auto-scroll while a drag of this scroller's kind is over
// it. Registering the same node again replaces the earlier registration.
func (o *OverRegionScroller) Register(n *Node, opts RegionOptions) (unregister func()) {
	if _, dup := o.regions[n]; dup {
		o.ctx.log.Warn().Str("node", n.Name).Str("source", o.kind.String()).
			Msg("node registered for auto-scroll twice; the latest registration wins")
	}
	warnIfNotScrollable(o.ctx, n)

	reg := &registration{node: n, opts: opts}
	o.regions[n] = reg
	n.setScrollMarker(o.kind)
	return func() {
		// A later registration for the same node stays in place.
		if o.regions[n] != reg {
			return
		}
		delete(o.regions, n)
		n.clearScrollMarker(o.kind)
	}
}

// RegisterWindow makes the window auto-scroll when no registered region
// claims an axis.
func (o *OverRegionScroller) RegisterWindow(opts RegionOptions) (unregister func()) {
	reg := &windowRegistration{opts: opts}
	o.windows = append(o.windows, reg)
	return func() {
		o.windows = slices.DeleteFunc(o.windows, func(w *windowRegistration) bool {
			return w == reg
		})
	}
}

func (o *OverRegionScroller) onFrame(f *Frame) {
	avail := availableAxes{true, true}

	for n := findScrollMarked(f.UnderPointer, o.kind); n != nil; n = findScrollMarked(n.Parent, o.kind) {
		reg, ok := o.regions[n]
		if !ok {
			continue
		}
		fb := f.feedback(n)
		if !reg.opts.canScroll(fb) {
			continue
		}
		// Engagement accrues while hovering, whether or not an edge qualifies.
		eng := f.engagement.markAndGet(n, f.Now)
		if !avail.any() {
			continue
		}
		cfg := resolveConfig(reg.opts.GetConfiguration, fb)
		if delta := claimEdges(n, f, eng, cfg, &avail); delta != (Vec2{}) {
			n.ScrollBy(delta)
			o.ctx.emit(o.kind, n, false, delta)
		}
	}

	if !avail.any() {
		return
	}
	window := o.ctx.host.Window()
	if window == nil {
		return
	}
	for _, w := range slices.Clone(o.windows) {
		fb := f.feedback(nil)
		if !w.opts.canScroll(fb) {
			continue
		}
		eng := f.engagement.markAndGet(window, f.Now)
		cfg := resolveConfig(w.opts.GetConfiguration, fb)
		if delta := claimEdges(window, f, eng, cfg, &avail); delta != (Vec2{}) {
			window.ScrollBy(delta)
			o.ctx.emit(o.kind, nil, false, delta)
			return
		}
	}
}

// claimEdges finds, for each available axis, the edge of s the pointer is
// scrolling toward, and claims the axis when one qualifies. The forward edge
// is checked before the backward one. It returns the combined delta.
func claimEdges(s Scrollable, f *Frame, eng engagement, cfg ResolvedConfig, avail *availableAxes) Vec2 {
	rect := s.Rect()
	p := f.pointer()

	var delta Vec2
	for _, axis := range [2]Axis{AxisVertical, AxisHorizontal} {
		if !avail[axis] {
			continue
		}
		for _, e := range axisEdges[axis] {
			hitbox := overRegionHitbox(e, rect, cfg)
			if !hitbox.Contains(p.X, p.Y) || !s.CanScrollOnEdge(e) {
				continue
			}
			change := scrollChange(speedInput{
				pointer:           p,
				edge:              e,
				hitbox:            hitbox,
				sinceLastFrame:    f.SinceLastFrame,
				engagement:        eng,
				now:               f.Now,
				distanceDampening: true,
				cfg:               cfg,
			})
			if axis == AxisVertical {
				delta.Y = change
			} else {
				delta.X = change
			}
			avail[axis] = false
			break
		}
	}
	return delta
}

// findScrollMarked returns the nearest of n and its ancestors that carries
// the registration marker for kind.
func findScrollMarked(n *Node, kind SourceKind) *Node {
	for ; n != nil; n = n.Parent {
		if n.hasScrollMarker(kind) {
			return n
		}
	}
	return nil
}

// warnIfNotScrollable logs when a registered node has no scrollable content
// yet. Registration still proceeds since content may grow later.
func warnIfNotScrollable(ctx *Context, n *Node) {
	if n.ContentWidth > n.Width || n.ContentHeight > n.Height {
		return
	}
	ctx.log.Warn().Str("node", n.Name).
		Float64("width", n.Width).Float64("height", n.Height).
		Float64("content_width", n.ContentWidth).Float64("content_height", n.ContentHeight).
		Msg("auto-scroll registered on a node that is not scrollable")
}
