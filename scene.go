package autoscroll

import (
	"os"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// pendingFrame is a RequestFrame callback waiting for the next Update.
type pendingFrame struct {
	id        FrameID
	fn        func(now time.Time)
	cancelled bool
}

// Scene is the top-level object that owns the node tree, the window camera,
// input state, and the frame queue the auto-scroll engine runs on.
type Scene struct {
	root   *Node
	camera *Camera
	store  EntityStore
	debug  bool
	log    zerolog.Logger

	// Frame loop
	clock       func() time.Time
	lastUpdate  time.Time
	frames      []*pendingFrame
	inflight    []*pendingFrame
	nextFrameID FrameID

	autoScroll *Context

	// Input state
	handlers     handlerRegistry
	pointer      pointerState
	dragDeadZone float64
	headless     bool
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner
}

// NewScene creates a scene whose window is width x height pixels. The root
// container fills the window; its content size is the document size.
func NewScene(width, height float64) *Scene {
	root := NewNode("root", 0, 0, width, height)
	return &Scene{
		root:         root,
		camera:       newCamera(root),
		log:          zerolog.Nop(),
		clock:        time.Now,
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the window camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Window returns the window as a Scrollable. Part of Host.
func (s *Scene) Window() Scrollable {
	return s.camera
}

// SetClock replaces the time source used to stamp frames. Tests and
// headless simulations use it to step time deterministically.
func (s *Scene) SetClock(clock func() time.Time) {
	s.clock = clock
}

// SetHeadless stops Update from polling the real mouse. Only injected input
// drives the pointer, and its last state holds between injected events.
func (s *Scene) SetHeadless(headless bool) {
	s.headless = headless
}

// AutoScroll returns the scene's auto-scroll context, creating it on first
// use. The element scheduler is fed by the scene's own drag events.
func (s *Scene) AutoScroll() *Context {
	if s.autoScroll == nil {
		s.autoScroll = NewContext(s, WithLogger(s.log), WithEntityStore(s.store))
		s.MonitorDrags(s.autoScroll.Scheduler(SourceElement))
	}
	return s.autoScroll
}

// Update processes input, advances the camera, and runs requested frames.
func (s *Scene) Update() {
	now := s.clock()
	dt := float32(1.0 / float64(ebiten.TPS()))
	if !s.lastUpdate.IsZero() {
		dt = float32(now.Sub(s.lastUpdate).Seconds())
	}
	s.lastUpdate = now

	s.camera.update(dt)
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.runFrames(now)
}

// RequestFrame schedules fn to run once during the next frame flush. Part of
// Host.
func (s *Scene) RequestFrame(fn func(now time.Time)) FrameID {
	s.nextFrameID++
	s.frames = append(s.frames, &pendingFrame{id: s.nextFrameID, fn: fn})
	return s.nextFrameID
}

// CancelFrame drops a pending frame request. Part of Host.
func (s *Scene) CancelFrame(id FrameID) {
	for _, f := range s.inflight {
		if f.id == id {
			f.cancelled = true
		}
	}
	s.frames = slices.DeleteFunc(s.frames, func(f *pendingFrame) bool {
		return f.id == id
	})
}

// runFrames runs every frame requested before the flush began. Frames
// requested by those callbacks wait for the next Update.
func (s *Scene) runFrames(now time.Time) {
	s.inflight, s.frames = s.frames, nil
	for _, f := range s.inflight {
		if !f.cancelled {
			f.fn(now)
		}
	}
	s.inflight = nil
}

// ElementAt returns the topmost visible, interactable node at the viewport
// point (x, y). Part of Host.
func (s *Scene) ElementAt(x, y float64) *Node {
	return s.hitTest(x, y)
}

// SetEntityStore sets the optional ECS bridge for applied scroll events.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
	if s.autoScroll != nil {
		s.autoScroll.store = store
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and auto-scroll
// diagnostics are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("component", "autoscroll").Logger()
	} else {
		s.log = zerolog.Nop()
	}
	debugLog = s.log
	if s.autoScroll != nil {
		s.autoScroll.log = s.log
	}
}

// SetLogger routes scene and auto-scroll diagnostics to log.
func (s *Scene) SetLogger(log zerolog.Logger) {
	s.log = log
	debugLog = log
	if s.autoScroll != nil {
		s.autoScroll.log = log
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLog is the logger node operations report to, set alongside globalDebug.
var debugLog = zerolog.Nop()
