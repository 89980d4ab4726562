package autoscroll

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type schedulerState uint8

const (
	stateIdle         schedulerState = iota // no drag in progress
	stateInitializing                       // waiting one frame to establish a time baseline
	stateRunning                            // ticking once per frame
)

func (s schedulerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInitializing:
		return "initializing"
	case stateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Frame is what every per-frame callback receives.
type Frame struct {
	// UnderPointer is the topmost interactive node at the pointer, or nil.
	UnderPointer *Node
	// Payload is the latest payload reported by the drag source.
	Payload DragPayload
	// SinceLastFrame is the time elapsed since the previous tick finished.
	SinceLastFrame time.Duration
	// Now is the frame timestamp.
	Now time.Time

	engagement *engagementLedger
}

// pointer returns the pointer position of the frame.
func (f *Frame) pointer() Vec2 {
	return Vec2{X: f.Payload.Input.X, Y: f.Payload.Input.Y}
}

// feedback builds the predicate argument for a region (nil for the window).
func (f *Frame) feedback(element *Node) Feedback {
	return Feedback{Input: f.Payload.Input, Data: f.Payload.Data, Element: element}
}

type frameCallback struct {
	id uint32
	fn func(*Frame)
}

// Scheduler drives per-frame callbacks for one drag source kind while a drag
// is in progress. It also owns the engagement ledger shared by every
// callback, so all scrollers of a kind see one clock and one ledger.
//
// Obtain schedulers from a Context; there is one per SourceKind.
type Scheduler struct {
	kind   SourceKind
	ctx    *Context
	ledger *engagementLedger

	state      schedulerState
	pending    FrameID
	hasPending bool
	latest     DragPayload
	lastFrame  time.Time
	session    uuid.UUID
	ticks      uint64

	callbacks []frameCallback
	nextID    uint32
}

func newScheduler(ctx *Context, kind SourceKind) *Scheduler {
	return &Scheduler{
		kind:   kind,
		ctx:    ctx,
		ledger: newEngagementLedger(),
	}
}

func (s *Scheduler) debug() *zerolog.Event {
	return s.ctx.log.Debug().Str("source", s.kind.String()).Str("drag", s.session.String())
}

// Kind returns the drag source kind this scheduler serves.
func (s *Scheduler) Kind() SourceKind {
	return s.kind
}

// Running reports whether a drag is in progress (initializing or running).
func (s *Scheduler) Running() bool {
	return s.state != stateIdle
}

// OnFrame registers fn to run on every running tick. The returned func
// removes it.
func (s *Scheduler) OnFrame(fn func(*Frame)) (remove func()) {
	s.nextID++
	id := s.nextID
	s.callbacks = append(s.callbacks, frameCallback{id: id, fn: fn})
	return func() {
		s.callbacks = slices.DeleteFunc(s.callbacks, func(cb frameCallback) bool {
			return cb.id == id
		})
	}
}

// Start begins a drag. Any drag already in progress is reset first, so
// engagement history is cleared and the timing warm-up repeats.
func (s *Scheduler) Start(p DragPayload) {
	if s.state != stateIdle {
		s.Reset()
	}
	s.state = stateInitializing
	s.latest = p
	s.session = uuid.New()
	s.ticks = 0
	s.debug().Msg("drag started")
	s.request(s.warmUp)
}

// Update records the latest payload. If no drag is in progress it starts
// one, which covers consumers attached after the drag began.
func (s *Scheduler) Update(p DragPayload) {
	if s.state == stateIdle {
		s.Start(p)
		return
	}
	s.latest = p
}

// Reset cancels the pending frame, clears engagement history, and returns to
// idle.
func (s *Scheduler) Reset() {
	if s.hasPending {
		s.ctx.host.CancelFrame(s.pending)
		s.hasPending = false
	}
	if s.state != stateIdle {
		s.debug().Uint64("ticks", s.ticks).Msg("drag ended")
	}
	s.state = stateIdle
	s.ledger.reset()
}

// OnDragStart starts tracking a drag.
func (s *Scheduler) OnDragStart(p DragPayload) { s.Start(p) }

// OnDropTargetChange refreshes the latest payload.
func (s *Scheduler) OnDropTargetChange(p DragPayload) { s.Update(p) }

// OnDrag refreshes the latest payload.
func (s *Scheduler) OnDrag(p DragPayload) { s.Update(p) }

// OnDrop stops the drag.
func (s *Scheduler) OnDrop() { s.Reset() }

func (s *Scheduler) request(fn func(time.Time)) {
	s.pending = s.ctx.host.RequestFrame(fn)
	s.hasPending = true
}

// warmUp runs on the first frame after Start. It only records a time
// baseline so the first real tick has a meaningful elapsed time.
func (s *Scheduler) warmUp(now time.Time) {
	s.hasPending = false
	if s.state != stateInitializing {
		return
	}
	s.state = stateRunning
	s.lastFrame = now
	s.request(s.tick)
}

// tick runs every registered callback for one frame. Ledger entries that no
// callback touched are purged once the whole batch has run.
func (s *Scheduler) tick(now time.Time) {
	s.hasPending = false
	if s.state != stateRunning {
		return
	}
	s.ticks++

	frame := &Frame{
		UnderPointer:   s.ctx.host.ElementAt(s.latest.Input.X, s.latest.Input.Y),
		Payload:        s.latest,
		SinceLastFrame: now.Sub(s.lastFrame),
		Now:            now,
		engagement:     s.ledger,
	}

	s.ledger.beginPass()
	for _, cb := range slices.Clone(s.callbacks) {
		cb.fn(frame)
	}
	s.ledger.endPass()

	// A callback may have ended the drag.
	if s.state != stateRunning {
		return
	}
	s.lastFrame = now
	s.request(s.tick)
}
