package autoscroll

import (
	"math"
	"slices"
)

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	EntityID  uint32
	UserData  any
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// DragContext carries drag event data. Coordinates are in viewport space.
type DragContext struct {
	Node      *Node
	EntityID  uint32
	UserData  any
	X, Y      float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// payload converts a drag event into the payload a Scheduler consumes.
func (c DragContext) payload() DragPayload {
	return DragPayload{
		Input: Input{X: c.X, Y: c.Y, Button: c.Button, Modifiers: c.Modifiers},
		Data:  c.Node,
	}
}

// nodeIDCounter is a plain counter (no atomic; the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a rectangular scene element. Any node whose content is larger than
// its own size is a scroll container: its children are laid out in content
// space and shifted by the scroll offset.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout. X and Y are relative to the parent's content origin.
	X, Y          float64
	Width, Height float64
	// ContentWidth and ContentHeight are the scrollable extent. Values not
	// larger than Width/Height mean no scrolling on that axis.
	ContentWidth, ContentHeight float64
	// ScrollX and ScrollY are the current scroll offset.
	ScrollX, ScrollY float64

	// Visibility & interaction
	Visible      bool
	Interactable bool
	ZIndex       int

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default)
	OnPointerDown func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnDragStart   func(DragContext)
	OnDrag        func(DragContext)
	OnDragEnd     func(DragContext)

	// scrollMarkers has one bit per SourceKind with a live over-region
	// registration, so ancestor walks need no registry lookup.
	scrollMarkers uint8
	disposed      bool
}

// NewNode creates a visible, interactable node with the given bounds.
func NewNode(name string, x, y, width, height float64) *Node {
	return &Node{
		ID:           nextNodeID(),
		Name:         name,
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Visible:      true,
		Interactable: true,
	}
}

// NewScrollContainer creates a node showing a width x height window onto
// content of contentWidth x contentHeight.
func NewScrollContainer(name string, x, y, width, height, contentWidth, contentHeight float64) *Node {
	n := NewNode(name, x, y, width, height)
	n.ContentWidth = contentWidth
	n.ContentHeight = contentHeight
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("autoscroll: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.Contains(n) {
		panic("autoscroll: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("autoscroll: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnDragStart = nil
	n.OnDrag = nil
	n.OnDragEnd = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// --- Geometry & scrolling ---

// Rect returns the node's bounds in viewport coordinates, accounting for
// every ancestor's position and scroll offset.
func (n *Node) Rect() Rect {
	x, y := n.X, n.Y
	for p := n.Parent; p != nil; p = p.Parent {
		x += p.X - p.ScrollX
		y += p.Y - p.ScrollY
	}
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// MaxScroll returns the largest scroll offset on each axis.
func (n *Node) MaxScroll() Vec2 {
	return Vec2{
		X: math.Max(n.ContentWidth-n.Width, 0),
		Y: math.Max(n.ContentHeight-n.Height, 0),
	}
}

// ScrollBy moves the scroll offset by delta, clamped to [0, MaxScroll].
func (n *Node) ScrollBy(delta Vec2) {
	m := n.MaxScroll()
	n.ScrollX = math.Max(0, math.Min(n.ScrollX+delta.X, m.X))
	n.ScrollY = math.Max(0, math.Min(n.ScrollY+delta.Y, m.Y))
}

// ScrollTo sets the scroll offset, clamped to [0, MaxScroll].
func (n *Node) ScrollTo(x, y float64) {
	n.ScrollBy(Vec2{X: x - n.ScrollX, Y: y - n.ScrollY})
}

// CanScrollOnEdge reports whether the node can scroll further toward e.
func (n *Node) CanScrollOnEdge(e Edge) bool {
	m := n.MaxScroll()
	switch e {
	case EdgeTop:
		return n.ScrollY > 0
	case EdgeBottom:
		return n.ScrollY < m.Y
	case EdgeLeft:
		return n.ScrollX > 0
	default:
		return n.ScrollX < m.X
	}
}

// --- Registration markers ---

func (n *Node) setScrollMarker(kind SourceKind) {
	n.scrollMarkers |= 1 << kind
}

func (n *Node) clearScrollMarker(kind SourceKind) {
	n.scrollMarkers &^= 1 << kind
}

func (n *Node) hasScrollMarker(kind SourceKind) bool {
	return n.scrollMarkers&(1<<kind) != 0
}
