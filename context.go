package autoscroll

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scrollable is anything the engine can scroll: a region node or the window.
type Scrollable interface {
	// Rect returns the visible rectangle in viewport coordinates.
	Rect() Rect
	// ScrollBy moves the scroll offset, clamped to the scrollable range.
	ScrollBy(delta Vec2)
	// CanScrollOnEdge reports whether any scroll capacity remains toward e.
	CanScrollOnEdge(e Edge) bool
}

// Host supplies the collaborators the engine reads every frame. *Scene
// implements it.
type Host interface {
	// RequestFrame schedules fn to run once on the next display frame.
	RequestFrame(fn func(now time.Time)) FrameID
	// CancelFrame drops a pending frame request.
	CancelFrame(id FrameID)
	// ElementAt returns the topmost interactive node at a viewport point.
	ElementAt(x, y float64) *Node
	// Window returns the window viewport.
	Window() Scrollable
}

// EntityStore receives an event for every scroll the engine applies.
type EntityStore interface {
	EmitEvent(event ScrollEvent)
}

// ScrollEvent describes one applied scroll mutation.
type ScrollEvent struct {
	Source SourceKind
	// Region is the scrolled node, or nil when the window scrolled.
	Region   *Node
	EntityID uint32
	// Overflow is true when the overflow scroller applied the change.
	Overflow bool
	Delta    Vec2
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Context) { c.log = log }
}

// WithEntityStore forwards applied scroll events to store.
func WithEntityStore(store EntityStore) Option {
	return func(c *Context) { c.store = store }
}

// Context owns the per-kind schedulers and scroller registries for one host.
// Consumers that share a Context share a scheduler per drag source kind, so
// every scroller for a kind runs on one synchronized clock.
type Context struct {
	host  Host
	log   zerolog.Logger
	store EntityStore

	schedulers [numSourceKinds]*Scheduler
	overRegion [numSourceKinds]*OverRegionScroller
	overflow   [numSourceKinds]*OverflowScroller
}

// NewContext creates a context bound to host. Diagnostics are discarded
// unless a logger is supplied.
func NewContext(host Host, opts ...Option) *Context {
	c := &Context{host: host, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scheduler returns the scheduler for kind, creating it on first use.
func (c *Context) Scheduler(kind SourceKind) *Scheduler {
	checkSourceKind(kind)
	if c.schedulers[kind] == nil {
		c.schedulers[kind] = newScheduler(c, kind)
	}
	return c.schedulers[kind]
}

// OverRegion returns the over-region scroller for kind, creating it on
// first use.
func (c *Context) OverRegion(kind SourceKind) *OverRegionScroller {
	checkSourceKind(kind)
	if c.overRegion[kind] == nil {
		c.overRegion[kind] = newOverRegionScroller(c, c.Scheduler(kind))
	}
	return c.overRegion[kind]
}

// Overflow returns the overflow scroller for kind, creating it on first use.
func (c *Context) Overflow(kind SourceKind) *OverflowScroller {
	checkSourceKind(kind)
	if c.overflow[kind] == nil {
		c.overflow[kind] = newOverflowScroller(c, c.Scheduler(kind))
	}
	return c.overflow[kind]
}

func checkSourceKind(kind SourceKind) {
	if kind >= numSourceKinds {
		panic(fmt.Sprintf("autoscroll: unknown drag source kind %d", kind))
	}
}

// Reset ends every drag in progress.
func (c *Context) Reset() {
	for _, s := range c.schedulers {
		if s != nil {
			s.Reset()
		}
	}
}

// emit forwards an applied scroll to the entity store, if any.
func (c *Context) emit(kind SourceKind, region *Node, overflow bool, delta Vec2) {
	if c.store == nil {
		return
	}
	var entityID uint32
	if region != nil {
		entityID = region.EntityID
	}
	c.store.EmitEvent(ScrollEvent{
		Source:   kind,
		Region:   region,
		EntityID: entityID,
		Overflow: overflow,
		Delta:    delta,
	})
}
