package autoscroll

import (
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// windowTraceName keys the window's offset in a TraceFrame.
const windowTraceName = "window"

// TraceScroll is one applied scroll within a frame.
type TraceScroll struct {
	Region   string  `json:"region"`
	Overflow bool    `json:"overflow,omitempty"`
	DeltaX   float64 `json:"dx"`
	DeltaY   float64 `json:"dy"`
}

// TraceOffset is a scroll offset at the end of a frame.
type TraceOffset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TraceFrame records the state after one Scene.Update.
type TraceFrame struct {
	Frame    int                    `json:"frame"`
	Dragging bool                   `json:"dragging"`
	PointerX float64                `json:"pointer_x"`
	PointerY float64                `json:"pointer_y"`
	Scrolls  []TraceScroll          `json:"scrolls,omitempty"`
	Offsets  map[string]TraceOffset `json:"offsets"`
}

// Trace is the frame-by-frame result of a simulated scenario.
type Trace struct {
	Scenario string       `json:"scenario"`
	Frames   []TraceFrame `json:"frames"`
}

// Final returns the offsets after the last frame, or nil for an empty trace.
func (t *Trace) Final() map[string]TraceOffset {
	if len(t.Frames) == 0 {
		return nil
	}
	return t.Frames[len(t.Frames)-1].Offsets
}

// traceStore collects the scroll events of the current frame.
type traceStore struct {
	pending []TraceScroll
}

func (ts *traceStore) EmitEvent(ev ScrollEvent) {
	name := windowTraceName
	if ev.Region != nil {
		name = ev.Region.Name
	}
	ts.pending = append(ts.pending, TraceScroll{
		Region:   name,
		Overflow: ev.Overflow,
		DeltaX:   ev.Delta.X,
		DeltaY:   ev.Delta.Y,
	})
}

// simulationEpoch is the fixed start time of every simulated run.
var simulationEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Simulate plays sc headlessly on a fixed-step clock and returns the trace.
func Simulate(sc *Scenario, log zerolog.Logger) *Trace {
	scene, nodes := sc.Build(log)
	store := &traceStore{}
	scene.SetEntityStore(store)

	now := simulationEpoch
	step := sc.frameDuration()
	scene.SetClock(func() time.Time { return now })

	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	slices.Sort(names)

	runner := NewTestRunner(sc.Steps)
	scene.SetTestRunner(runner)

	trace := &Trace{Scenario: sc.Name}
	for frame := 1; !runner.Done() || scene.PendingInput() > 0; frame++ {
		now = now.Add(step)
		scene.Update()

		tf := TraceFrame{
			Frame:    frame,
			Dragging: scene.pointer.dragging,
			PointerX: scene.pointer.lastX,
			PointerY: scene.pointer.lastY,
			Scrolls:  store.pending,
			Offsets:  make(map[string]TraceOffset, len(names)+1),
		}
		store.pending = nil
		w := scene.Camera().Scroll()
		tf.Offsets[windowTraceName] = TraceOffset{X: w.X, Y: w.Y}
		for _, name := range names {
			n := nodes[name]
			tf.Offsets[name] = TraceOffset{X: n.ScrollX, Y: n.ScrollY}
		}
		trace.Frames = append(trace.Frames, tf)
	}
	log.Debug().Str("scenario", sc.Name).Int("frames", len(trace.Frames)).Msg("simulation finished")
	return trace
}
