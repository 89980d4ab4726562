package autoscroll

// Vec2 is a 2D vector used for positions, offsets, and scroll deltas.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in viewport coordinates. The origin is
// the top-left of the window, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlapping area of r and other. The result has zero
// width or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// edgeValue returns the coordinate of the given edge.
func (r Rect) edgeValue(e Edge) float64 {
	switch e {
	case EdgeTop:
		return r.Top()
	case EdgeRight:
		return r.Right()
	case EdgeBottom:
		return r.Bottom()
	default:
		return r.Left()
	}
}

// mainAxisSize returns the rectangle's extent along the axis perpendicular
// to edge e.
func (r Rect) mainAxisSize(e Edge) float64 {
	if e.Axis() == AxisVertical {
		return r.Height
	}
	return r.Width
}

// Edge identifies one side of a region's rectangle.
type Edge uint8

const (
	EdgeTop    Edge = iota // scrolls backward on the vertical axis
	EdgeRight              // scrolls forward on the horizontal axis
	EdgeBottom             // scrolls forward on the vertical axis
	EdgeLeft               // scrolls backward on the horizontal axis
)

// edges lists every edge in declaration order.
var edges = [4]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

// String returns the lowercase edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Axis returns the main axis of the edge: the axis a scroll toward it moves on.
func (e Edge) Axis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return AxisVertical
	}
	return AxisHorizontal
}

// isStart reports whether scrolling toward e decreases the scroll offset.
func (e Edge) isStart() bool {
	return e == EdgeTop || e == EdgeLeft
}

// opposite returns the edge across the region from e.
func (e Edge) opposite() Edge {
	return (e + 2) % 4
}

// Axis is a scroll direction.
type Axis uint8

const (
	AxisVertical   Axis = iota // scrollTop
	AxisHorizontal             // scrollLeft
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// axisEdges lists, per axis, the edges in the order they are checked: the
// forward edge first, then the backward one.
var axisEdges = [2][2]Edge{
	AxisVertical:   {EdgeBottom, EdgeTop},
	AxisHorizontal: {EdgeRight, EdgeLeft},
}

// AllowedAxis restricts which axes an overflow registration may scroll.
type AllowedAxis uint8

const (
	AllowAll        AllowedAxis = iota // both axes
	AllowVertical                      // vertical only
	AllowHorizontal                    // horizontal only
)

func (a AllowedAxis) String() string {
	switch a {
	case AllowVertical:
		return "vertical"
	case AllowHorizontal:
		return "horizontal"
	default:
		return "all"
	}
}

// permits reports whether a scroll on axis a is allowed.
func (a AllowedAxis) permits(axis Axis) bool {
	switch a {
	case AllowVertical:
		return axis == AxisVertical
	case AllowHorizontal:
		return axis == AxisHorizontal
	default:
		return true
	}
}

// EdgeValues holds one value per edge.
type EdgeValues struct {
	Top    float64 `yaml:"top" validate:"gte=0,lte=1"`
	Right  float64 `yaml:"right" validate:"gte=0,lte=1"`
	Bottom float64 `yaml:"bottom" validate:"gte=0,lte=1"`
	Left   float64 `yaml:"left" validate:"gte=0,lte=1"`
}

// Get returns the value for edge e.
func (v EdgeValues) Get(e Edge) float64 {
	switch e {
	case EdgeTop:
		return v.Top
	case EdgeRight:
		return v.Right
	case EdgeBottom:
		return v.Bottom
	default:
		return v.Left
	}
}

// UniformEdges returns EdgeValues with every edge set to v.
func UniformEdges(v float64) EdgeValues {
	return EdgeValues{Top: v, Right: v, Bottom: v, Left: v}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// SourceKind identifies a kind of drag source. Each kind gets its own
// scheduler, registries, and region markers.
type SourceKind uint8

const (
	SourceElement       SourceKind = iota // dragging a scene node
	SourceExternal                        // files or data dragged in from outside
	SourceTextSelection                   // dragging selected text
	numSourceKinds
)

// String returns a short name for the drag source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceElement:
		return "element"
	case SourceExternal:
		return "external"
	case SourceTextSelection:
		return "text-selection"
	default:
		return "unknown"
	}
}

// Input is the latest pointer input of a drag, in viewport coordinates.
type Input struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// DragPayload is what a drag source reports on every lifecycle event.
type DragPayload struct {
	Input Input
	// Data is an opaque, drag-specific value (the dragged node, file list, ...).
	Data any
}

// Feedback is passed to every registration predicate.
type Feedback struct {
	Input Input
	Data  any
	// Element is the registered region being evaluated, or nil for the window.
	Element *Node
}
