package autoscroll

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test", 1, 2, 30, 40)
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.X != 1 || n.Y != 2 || n.Width != 30 || n.Height != 40 {
		t.Errorf("bounds = (%v, %v, %v, %v)", n.X, n.Y, n.Width, n.Height)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.Interactable {
		t.Error("Interactable should be true")
	}
	if n.MaxScroll() != (Vec2{}) {
		t.Errorf("MaxScroll = %+v, want zero", n.MaxScroll())
	}
}

func TestNewScrollContainer(t *testing.T) {
	n := NewScrollContainer("list", 0, 0, 300, 400, 500, 2000)
	if got := n.MaxScroll(); got != (Vec2{X: 200, Y: 1600}) {
		t.Errorf("MaxScroll = %+v, want (200, 1600)", got)
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a", 0, 0, 1, 1)
	b := NewNode("b", 0, 0, 1, 1)
	if a.ID == b.ID {
		t.Errorf("IDs should be unique: both %d", a.ID)
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent", 0, 0, 10, 10)
	child := NewNode("child", 0, 0, 10, 10)
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("parent should have exactly child")
	}
}

func TestAddChildReparent(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	b := NewNode("b", 0, 0, 10, 10)
	child := NewNode("child", 0, 0, 10, 10)
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent has %d children, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	b := NewNode("b", 0, 0, 10, 10)
	a.AddChild(b)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanic(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding self")
		}
	}()
	a.AddChild(a)
}

func TestAddChildNilPanic(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil child")
		}
	}()
	a.AddChild(nil)
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent", 0, 0, 10, 10)
	a := NewNode("a", 0, 0, 1, 1)
	b := NewNode("b", 0, 0, 1, 1)
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChild(a)

	if a.Parent != nil {
		t.Error("removed child should have no parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Error("remaining child should be b")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	b := NewNode("b", 0, 0, 10, 10)
	child := NewNode("child", 0, 0, 1, 1)
	a.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic removing from the wrong parent")
		}
	}()
	b.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("orphan should stay an orphan")
	}
}

func TestContains(t *testing.T) {
	root := NewNode("root", 0, 0, 10, 10)
	mid := NewNode("mid", 0, 0, 10, 10)
	leaf := NewNode("leaf", 0, 0, 10, 10)
	other := NewNode("other", 0, 0, 10, 10)
	root.AddChild(mid)
	mid.AddChild(leaf)

	if !root.Contains(leaf) || !root.Contains(root) || !mid.Contains(leaf) {
		t.Error("ancestors should contain their descendants and themselves")
	}
	if leaf.Contains(root) || root.Contains(other) || root.Contains(nil) {
		t.Error("Contains reported an unrelated node")
	}
}

func TestDispose(t *testing.T) {
	parent := NewNode("parent", 0, 0, 10, 10)
	n := NewNode("n", 0, 0, 10, 10)
	child := NewNode("child", 0, 0, 1, 1)
	parent.AddChild(n)
	n.AddChild(child)
	n.OnDrag = func(DragContext) {}

	n.Dispose()

	if !n.IsDisposed() || !child.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed node should be detached")
	}
	if n.ID != 0 || n.OnDrag != nil || n.NumChildren() != 0 {
		t.Error("disposed node should be cleared")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("should stay disposed")
	}
}

// --- Geometry & scrolling ---

func TestRectAccountsForAncestorScroll(t *testing.T) {
	root := NewScrollContainer("root", 0, 0, 800, 600, 800, 3000)
	list := NewScrollContainer("list", 100, 200, 300, 400, 300, 2000)
	item := NewNode("item", 10, 500, 280, 50)
	root.AddChild(list)
	list.AddChild(item)

	if got := item.Rect(); got != (Rect{X: 110, Y: 700, Width: 280, Height: 50}) {
		t.Errorf("unscrolled Rect = %+v", got)
	}

	list.ScrollTo(0, 450)
	root.ScrollTo(0, 100)
	if got := list.Rect(); got != (Rect{X: 100, Y: 100, Width: 300, Height: 400}) {
		t.Errorf("list Rect = %+v", got)
	}
	if got := item.Rect(); got != (Rect{X: 110, Y: 150, Width: 280, Height: 50}) {
		t.Errorf("scrolled item Rect = %+v", got)
	}
}

func TestScrollByClamps(t *testing.T) {
	tests := []struct {
		name  string
		start Vec2
		delta Vec2
		want  Vec2
	}{
		{"within range", Vec2{X: 50, Y: 50}, Vec2{X: 10, Y: -20}, Vec2{X: 60, Y: 30}},
		{"below zero", Vec2{X: 5, Y: 5}, Vec2{X: -10, Y: -10}, Vec2{}},
		{"past the end", Vec2{X: 95, Y: 1595}, Vec2{X: 10, Y: 10}, Vec2{X: 100, Y: 1600}},
		{"fractional", Vec2{}, Vec2{Y: 0.5}, Vec2{Y: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewScrollContainer("n", 0, 0, 300, 400, 400, 2000)
			n.ScrollTo(tt.start.X, tt.start.Y)
			n.ScrollBy(tt.delta)
			if got := (Vec2{X: n.ScrollX, Y: n.ScrollY}); got != tt.want {
				t.Errorf("scroll = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScrollOnNonScrollableAxis(t *testing.T) {
	n := NewScrollContainer("n", 0, 0, 300, 400, 100, 2000)
	n.ScrollBy(Vec2{X: 50, Y: 50})
	if n.ScrollX != 0 {
		t.Errorf("ScrollX = %v, want 0 when content is narrower than the node", n.ScrollX)
	}
	if n.ScrollY != 50 {
		t.Errorf("ScrollY = %v, want 50", n.ScrollY)
	}
}

func TestCanScrollOnEdge(t *testing.T) {
	n := NewScrollContainer("n", 0, 0, 100, 100, 200, 200)
	tests := []struct {
		name   string
		scroll Vec2
		want   [4]bool // top, right, bottom, left
	}{
		{"at origin", Vec2{}, [4]bool{false, true, true, false}},
		{"middle", Vec2{X: 50, Y: 50}, [4]bool{true, true, true, true}},
		{"at the end", Vec2{X: 100, Y: 100}, [4]bool{true, false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n.ScrollTo(tt.scroll.X, tt.scroll.Y)
			for _, e := range edges {
				if got := n.CanScrollOnEdge(e); got != tt.want[e] {
					t.Errorf("CanScrollOnEdge(%v) = %v, want %v", e, got, tt.want[e])
				}
			}
		})
	}
}

// --- Registration markers ---

func TestScrollMarkers(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	n.setScrollMarker(SourceElement)
	n.setScrollMarker(SourceTextSelection)

	if !n.hasScrollMarker(SourceElement) || !n.hasScrollMarker(SourceTextSelection) {
		t.Error("markers should be set")
	}
	if n.hasScrollMarker(SourceExternal) {
		t.Error("unset kind reported as marked")
	}

	n.clearScrollMarker(SourceElement)
	if n.hasScrollMarker(SourceElement) {
		t.Error("marker should be cleared")
	}
	if !n.hasScrollMarker(SourceTextSelection) {
		t.Error("clearing one kind cleared another")
	}
}

func TestFindScrollMarked(t *testing.T) {
	outer := NewNode("outer", 0, 0, 10, 10)
	mid := NewNode("mid", 0, 0, 10, 10)
	leaf := NewNode("leaf", 0, 0, 10, 10)
	outer.AddChild(mid)
	mid.AddChild(leaf)
	outer.setScrollMarker(SourceElement)

	if got := findScrollMarked(leaf, SourceElement); got != outer {
		t.Errorf("findScrollMarked = %v, want outer", got)
	}
	if got := findScrollMarked(leaf, SourceExternal); got != nil {
		t.Errorf("findScrollMarked for another kind = %v, want nil", got)
	}
	if got := findScrollMarked(nil, SourceElement); got != nil {
		t.Errorf("findScrollMarked(nil) = %v", got)
	}
}

// --- Drag payload ---

func TestDragContextPayload(t *testing.T) {
	n := NewNode("card", 0, 0, 10, 10)
	ctx := DragContext{Node: n, X: 12, Y: 34, Button: MouseButtonRight, Modifiers: ModCtrl}
	p := ctx.payload()
	if p.Input != (Input{X: 12, Y: 34, Button: MouseButtonRight, Modifiers: ModCtrl}) {
		t.Errorf("Input = %+v", p.Input)
	}
	if p.Data != n {
		t.Errorf("Data = %v, want the dragged node", p.Data)
	}
}
