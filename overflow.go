package autoscroll

import "slices"

// OverflowOptions customizes an overflow registration. GetOverflow declares
// how far beyond each edge the region reaches; the other callbacks are
// optional. All callbacks run every frame and must not have side effects.
type OverflowOptions struct {
	CanScroll        func(Feedback) bool
	GetConfiguration func(Feedback) Config
	// GetAllowedAxis restricts scrolling to one axis. Nil allows both.
	GetAllowedAxis func(Feedback) AllowedAxis
	GetOverflow    func() Overflow
}

type overflowRegistration struct {
	node *Node
	opts OverflowOptions
}

func (r *overflowRegistration) overflow() Overflow {
	if r.opts.GetOverflow == nil {
		return Overflow{}
	}
	return r.opts.GetOverflow()
}

func (r *overflowRegistration) allowedAxis(fb Feedback) AllowedAxis {
	if r.opts.GetAllowedAxis == nil {
		return AllowAll
	}
	return r.opts.GetAllowedAxis(fb)
}

// edgeMatch is the hitbox the pointer matched for one edge.
type edgeMatch struct {
	ok      bool
	outside bool
	hitbox  Rect
}

// OverflowScroller scrolls registered regions while the pointer is near
// their edges, including a configurable reach outside their bounds. Unlike
// OverRegionScroller, registrations are independent: two of them may scroll
// on the same axis in the same frame.
type OverflowScroller struct {
	ctx  *Context
	kind SourceKind

	regs []*overflowRegistration
}

func newOverflowScroller(ctx *Context, sched *Scheduler) *OverflowScroller {
	o := &OverflowScroller{ctx: ctx, kind: sched.Kind()}
	sched.OnFrame(o.onFrame)
	return o
}

// Register adds an overflow registration for n. The same node may be
// registered any number of times; each registration is evaluated on its own.
func (o *OverflowScroller) Register(n *Node, opts OverflowOptions) (unregister func()) {
	warnIfNotScrollable(o.ctx, n)
	reg := &overflowRegistration{node: n, opts: opts}
	if err := reg.overflow().Validate(); err != nil {
		o.ctx.log.Warn().Err(err).Str("node", n.Name).Msg("overflow reach ignores a disallowed value")
	}
	o.regs = append(o.regs, reg)
	return func() {
		o.regs = slices.DeleteFunc(o.regs, func(r *overflowRegistration) bool {
			return r == reg
		})
	}
}

func (o *OverflowScroller) onFrame(f *Frame) {
	p := f.pointer()

	for _, reg := range slices.Clone(o.regs) {
		n := reg.node
		// The pointer is over the region itself; OverRegionScroller owns that case.
		if f.UnderPointer != nil && n.Contains(f.UnderPointer) {
			continue
		}
		fb := f.feedback(n)
		if reg.opts.CanScroll != nil && !reg.opts.CanScroll(fb) {
			continue
		}

		cfg := resolveConfig(reg.opts.GetConfiguration, fb)
		overflow := reg.overflow()
		rect := n.Rect()

		var matches [4]edgeMatch
		var matched bool
		for _, e := range edges {
			hb := overflowHitboxes(e, rect, overflow.reach(e), cfg)
			switch {
			case hb.outsideOfEdge.mainAxisSize(e) > 0 && hb.outsideOfEdge.Contains(p.X, p.Y):
				matches[e] = edgeMatch{ok: true, outside: true, hitbox: hb.outsideOfEdge}
			case hb.insideOfEdge.Contains(p.X, p.Y):
				matches[e] = edgeMatch{ok: true, hitbox: hb.insideOfEdge}
			default:
				continue
			}
			matched = true
		}
		if !matched {
			continue
		}
		eng := f.engagement.markAndGet(n, f.Now)

		allowed := reg.allowedAxis(fb)
		var delta Vec2
		for _, axis := range [2]Axis{AxisVertical, AxisHorizontal} {
			if !allowed.permits(axis) {
				continue
			}
			for _, e := range axisEdges[axis] {
				m := matches[e]
				if !m.ok || !n.CanScrollOnEdge(e) {
					continue
				}
				change := scrollChange(speedInput{
					pointer:           p,
					edge:              e,
					hitbox:            m.hitbox,
					sinceLastFrame:    f.SinceLastFrame,
					engagement:        eng,
					now:               f.Now,
					distanceDampening: !m.outside,
					cfg:               cfg,
				})
				if axis == AxisVertical {
					delta.Y = change
				} else {
					delta.X = change
				}
				break
			}
		}
		if delta != (Vec2{}) {
			n.ScrollBy(delta)
			o.ctx.emit(o.kind, n, true, delta)
		}
	}
}
