package autoscroll

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// EventType identifies a scene-level pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // mouse button pressed
	EventPointerUp                    // mouse button released
	EventDragStart                    // movement exceeded the dead zone while pressed
	EventDrag                         // pointer moved during a drag
	EventDragEnd                      // button released after a drag
)

// pointerState tracks the mouse between frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitNode  *Node
	dragging bool
	button   MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	dragStart   []dragHandler
	drag        []dragHandler
	dragEnd     []dragHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	pointerMatch := func(p pointerHandler) bool { return p.id == h.id }
	dragMatch := func(d dragHandler) bool { return d.id == h.id }
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = slices.DeleteFunc(h.reg.pointerDown, pointerMatch)
	case EventPointerUp:
		h.reg.pointerUp = slices.DeleteFunc(h.reg.pointerUp, pointerMatch)
	case EventDragStart:
		h.reg.dragStart = slices.DeleteFunc(h.reg.dragStart, dragMatch)
	case EventDrag:
		h.reg.drag = slices.DeleteFunc(h.reg.drag, dragMatch)
	case EventDragEnd:
		h.reg.dragEnd = slices.DeleteFunc(h.reg.dragEnd, dragMatch)
	}
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerDown, EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerUp, EventPointerUp, fn)
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	return s.addDragHandler(&s.handlers.dragStart, EventDragStart, fn)
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	return s.addDragHandler(&s.handlers.drag, EventDrag, fn)
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return s.addDragHandler(&s.handlers.dragEnd, EventDragEnd, fn)
}

func (s *Scene) addPointerHandler(list *[]pointerHandler, event EventType, fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

func (s *Scene) addDragHandler(list *[]dragHandler, event EventType, fn func(DragContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// MonitorDrags feeds the scene's drag lifecycle into sched: drag start
// starts it, every move updates the payload, and drag end resets it. The
// returned func detaches the monitor.
func (s *Scene) MonitorDrags(sched *Scheduler) (stop func()) {
	handles := []CallbackHandle{
		s.OnDragStart(func(ctx DragContext) { sched.OnDragStart(ctx.payload()) }),
		s.OnDrag(func(ctx DragContext) { sched.OnDrag(ctx.payload()) }),
		s.OnDragEnd(func(DragContext) { sched.OnDrop() }),
	}
	return func() {
		for _, h := range handles {
			h.Remove()
		}
	}
}

// --- Hit testing ---

// hitTest finds the topmost visible, interactable node at (x, y). A node
// clips its descendants: a child outside its parent's rect is never hit.
func (s *Scene) hitTest(x, y float64) *Node {
	return hitNode(s.root, Vec2{X: x, Y: y})
}

func hitNode(n *Node, p Vec2) *Node {
	if !n.Visible || !n.Interactable || n.disposed {
		return nil
	}
	if !n.Rect().Contains(p.X, p.Y) {
		return nil
	}
	children := n.children
	if len(children) > 1 {
		children = slices.Clone(children)
		slices.SortStableFunc(children, func(a, b *Node) int { return a.ZIndex - b.ZIndex })
	}
	// Reverse painter order: topmost child first.
	for i := len(children) - 1; i >= 0; i-- {
		if hit := hitNode(children[i], p); hit != nil {
			return hit
		}
	}
	return n
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update() to handle mouse input. One
// injected event, when queued, replaces the real mouse for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.headless {
		return
	}
	s.processMousePointer(readModifiers())
}

// processMousePointer polls the real mouse.
func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(float64(mx), float64(my), pressed, button, mods)
}

// processPointer runs the pointer state machine. Coordinates are in
// viewport space.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		target := s.hitTest(x, y)
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.hitNode = target
		ps.dragging = false
		s.firePointer(s.handlers.pointerDown, target, x, y, ps.button, mods)
		if target != nil && target.OnPointerDown != nil {
			target.OnPointerDown(pointerContext(target, x, y, ps.button, mods))
		}

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(EventDragEnd, ps, x, y, x-ps.lastX, y-ps.lastY, mods)
		}
		target := s.hitTest(x, y)
		s.firePointer(s.handlers.pointerUp, target, x, y, ps.button, mods)
		if target != nil && target.OnPointerUp != nil {
			target.OnPointerUp(pointerContext(target, x, y, ps.button, mods))
		}
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging && math.Hypot(x-ps.startX, y-ps.startY) > s.dragDeadZone {
			ps.dragging = true
			s.fireDrag(EventDragStart, ps, x, y, x-ps.startX, y-ps.startY, mods)
		}
		if ps.dragging {
			s.fireDrag(EventDrag, ps, x, y, x-ps.lastX, y-ps.lastY, mods)
		}
		ps.lastX, ps.lastY = x, y

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// --- Event dispatch ---

func pointerContext(node *Node, x, y float64, button MouseButton, mods KeyModifiers) PointerContext {
	ctx := PointerContext{Node: node, X: x, Y: y, Button: button, Modifiers: mods}
	if node != nil {
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	return ctx
}

func (s *Scene) firePointer(handlers []pointerHandler, node *Node, x, y float64, button MouseButton, mods KeyModifiers) {
	ctx := pointerContext(node, x, y, button, mods)
	for _, h := range slices.Clone(handlers) {
		h.fn(ctx)
	}
}

// fireDrag dispatches one drag event to the scene handlers and then to the
// node the drag started on.
func (s *Scene) fireDrag(event EventType, ps *pointerState, x, y, deltaX, deltaY float64, mods KeyModifiers) {
	node := ps.hitNode
	ctx := DragContext{
		Node: node, X: x, Y: y,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: deltaX, DeltaY: deltaY,
		Button: ps.button, Modifiers: mods,
	}

	var handlers []dragHandler
	var nodeFn func(DragContext)
	if node != nil {
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	switch event {
	case EventDragStart:
		handlers = s.handlers.dragStart
		if node != nil {
			nodeFn = node.OnDragStart
		}
	case EventDragEnd:
		handlers = s.handlers.dragEnd
		if node != nil {
			nodeFn = node.OnDragEnd
		}
	default:
		handlers = s.handlers.drag
		if node != nil {
			nodeFn = node.OnDrag
		}
	}

	for _, h := range slices.Clone(handlers) {
		h.fn(ctx)
	}
	if nodeFn != nil {
		nodeFn(ctx)
	}
}
