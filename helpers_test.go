package autoscroll

import (
	"math"
	"testing"
	"time"
)

var testEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const testFrame = time.Second / 60

// recordStore captures applied scroll events, grouped by frame.
type recordStore struct {
	frame  int
	events []recordedEvent
}

type recordedEvent struct {
	frame int
	ScrollEvent
}

func (r *recordStore) EmitEvent(ev ScrollEvent) {
	r.events = append(r.events, recordedEvent{frame: r.frame, ScrollEvent: ev})
}

// forFrame returns the events applied during frame.
func (r *recordStore) forFrame(frame int) []ScrollEvent {
	var out []ScrollEvent
	for _, ev := range r.events {
		if ev.frame == frame {
			out = append(out, ev.ScrollEvent)
		}
	}
	return out
}

// harness drives a headless scene on a fixed 60fps clock.
type harness struct {
	t     *testing.T
	scene *Scene
	ctx   *Context
	sched *Scheduler
	rec   *recordStore
	now   time.Time
	frame int
}

func newHarness(t *testing.T, width, height float64) *harness {
	t.Helper()
	h := &harness{t: t, now: testEpoch, rec: &recordStore{}}
	h.scene = NewScene(width, height)
	h.scene.SetHeadless(true)
	h.scene.SetClock(func() time.Time { return h.now })
	h.scene.SetEntityStore(h.rec)
	h.ctx = h.scene.AutoScroll()
	h.sched = h.ctx.Scheduler(SourceElement)
	return h
}

// step runs one Update and returns the scroll events it applied.
func (h *harness) step() []ScrollEvent {
	h.frame++
	h.rec.frame = h.frame
	h.now = h.now.Add(testFrame)
	h.scene.Update()
	return h.rec.forFrame(h.frame)
}

func (h *harness) steps(n int) {
	for range n {
		h.step()
	}
}

func (h *harness) startDrag(x, y float64) {
	h.sched.OnDragStart(DragPayload{Input: Input{X: x, Y: y}})
}

func (h *harness) moveDrag(x, y float64) {
	h.sched.OnDrag(DragPayload{Input: Input{X: x, Y: y}})
}

func (h *harness) overRegion() *OverRegionScroller {
	return h.ctx.OverRegion(SourceElement)
}

func (h *harness) overflow() *OverflowScroller {
	return h.ctx.Overflow(SourceElement)
}

// container adds a scroll container under parent.
func (h *harness) container(parent *Node, name string, x, y, w, ht, cw, ch float64) *Node {
	h.t.Helper()
	if parent == nil {
		parent = h.scene.Root()
	}
	n := NewScrollContainer(name, x, y, w, ht, cw, ch)
	parent.AddChild(n)
	return n
}

// sumDelta adds up the deltas applied to region (nil for the window).
func sumDelta(events []ScrollEvent, region *Node) Vec2 {
	var sum Vec2
	for _, ev := range events {
		if ev.Region == region {
			sum.X += ev.Delta.X
			sum.Y += ev.Delta.Y
		}
	}
	return sum
}

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
