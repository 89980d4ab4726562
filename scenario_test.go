package autoscroll

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const listScenario = `
name: list
window:
  width: 800
  height: 600
  content_height: 4000
  auto_scroll: {}
nodes:
  - name: list
    x: 100
    y: 100
    width: 300
    height: 400
    content_height: 2000
    over_region: {}
steps:
  - {action: drag, x: 250, y: 200, to_x: 250, to_y: 495, frames: 10}
  - {action: wait, frames: 60}
  - {action: release, x: 250, y: 495}
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(listScenario))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if sc.Name != "list" {
		t.Errorf("Name = %q", sc.Name)
	}
	if sc.Window.Width != 800 || sc.Window.ContentHeight != 4000 || sc.Window.AutoScroll == nil {
		t.Errorf("Window = %+v", sc.Window)
	}
	if len(sc.Nodes) != 1 || sc.Nodes[0].OverRegion == nil {
		t.Fatalf("Nodes = %+v", sc.Nodes)
	}
	if len(sc.Steps) != 3 || sc.Steps[0].Action != ActionDrag || sc.Steps[0].ToY != 495 {
		t.Errorf("Steps = %+v", sc.Steps)
	}
	if got := sc.frameDuration(); got != time.Second/60 {
		t.Errorf("frameDuration = %v, want 1/60s", got)
	}
}

func TestScenarioFrameDuration(t *testing.T) {
	sc := &Scenario{FrameMs: 8}
	if got := sc.frameDuration(); got != 8*time.Millisecond {
		t.Errorf("frameDuration = %v, want 8ms", got)
	}
}

func TestScenarioValidate(t *testing.T) {
	window := "window: {width: 100, height: 100}\n"
	steps := "steps: [{action: wait, frames: 1}]\n"
	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{
			name:      "zero window height",
			doc:       "window: {width: 100, height: 0}\n" + steps,
			wantField: "window.height",
		},
		{
			name:      "no steps",
			doc:       window,
			wantField: "steps",
		},
		{
			name:      "unknown action",
			doc:       window + "steps: [{action: teleport}]\n",
			wantField: "steps[0].action",
		},
		{
			name:      "node without a name",
			doc:       window + steps + "nodes: [{width: 10, height: 10}]\n",
			wantField: "nodes[0].name",
		},
		{
			name: "duplicate names",
			doc: window + steps + `nodes:
  - {name: a, width: 10, height: 10, children: [{name: a, width: 5, height: 5}]}
`,
			wantField: "nodes",
		},
		{
			name: "overflow reaching back",
			doc: window + steps + `nodes:
  - name: list
    width: 10
    height: 10
    overflow: {reach: {from_bottom_edge: {bottom: 20, top: 5}}}
`,
			wantField: "list.overflow.reach",
		},
		{
			name: "bad allowed axis",
			doc: window + steps + `nodes:
  - {name: list, width: 10, height: 10, overflow: {allowed_axis: diagonal}}
`,
			wantField: "nodes[0].overflow.allowed_axis",
		},
		{
			name: "bad region config",
			doc: window + steps + `nodes:
  - {name: list, width: 10, height: 10, over_region: {easing: wobble}}
`,
			wantField: "nodes[0].over_region.easing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q (%v)", verr.Field, tt.wantField, verr)
			}
		})
	}
}

func TestLoadScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.yaml")
	if err := os.WriteFile(path, []byte(listScenario), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenarioFile(path); err != nil {
		t.Fatalf("LoadScenarioFile: %v", err)
	}

	_, err := LoadScenarioFile(filepath.Join(dir, "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "load scenario:") {
		t.Errorf("err = %q, want load scenario prefix", err)
	}
}

func TestScenarioBuild(t *testing.T) {
	sc, err := ParseScenario([]byte(`
window: {width: 800, height: 600, content_width: 1600, scroll_x: 300}
nodes:
  - name: outer
    x: 10
    y: 20
    width: 300
    height: 300
    content_height: 900
    scroll_y: 50
    z_index: 2
    over_region: {}
    children:
      - name: inner
        width: 100
        height: 100
        overflow: {reach: {from_bottom_edge: {bottom: 40}}, allowed_axis: vertical}
steps: [{action: wait, frames: 1}]
`))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	scene, nodes := sc.Build(zerolog.Nop())

	if !scene.headless {
		t.Error("built scene is not headless")
	}
	if got := scene.Camera().Scroll(); got != (Vec2{X: 300}) {
		t.Errorf("window scroll = %+v, want (300, 0)", got)
	}
	outer, inner := nodes["outer"], nodes["inner"]
	if outer == nil || inner == nil {
		t.Fatalf("nodes = %v", nodes)
	}
	if inner.Parent != outer || outer.Parent != scene.Root() {
		t.Error("tree structure not preserved")
	}
	if outer.ScrollY != 50 || outer.ZIndex != 2 {
		t.Errorf("outer = scroll %v z %d", outer.ScrollY, outer.ZIndex)
	}
	if !outer.hasScrollMarker(SourceElement) || inner.hasScrollMarker(SourceElement) {
		t.Error("over-region markers do not match the declared registrations")
	}
	ov := scene.AutoScroll().Overflow(SourceElement)
	if len(ov.regs) != 1 || ov.regs[0].node != inner {
		t.Fatalf("overflow registrations = %+v", ov.regs)
	}
	if got := ov.regs[0].allowedAxis(Feedback{}); got != AllowVertical {
		t.Errorf("allowed axis = %v, want vertical", got)
	}
	if got := ov.regs[0].overflow().reach(EdgeBottom).Bottom; got != 40 {
		t.Errorf("bottom reach = %v, want 40", got)
	}
	if n := len(scene.AutoScroll().OverRegion(SourceElement).windows); n != 0 {
		t.Errorf("window registrations = %d, want 0 without auto_scroll", n)
	}
}

func TestSimulateListScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(listScenario))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	trace := Simulate(sc, zerolog.Nop())

	if trace.Scenario != "list" {
		t.Errorf("Scenario = %q", trace.Scenario)
	}
	if len(trace.Frames) < 70 {
		t.Fatalf("frames = %d, want at least the drag and the wait", len(trace.Frames))
	}
	for i, f := range trace.Frames {
		if f.Frame != i+1 {
			t.Fatalf("frame %d numbered %d", i+1, f.Frame)
		}
		for _, s := range f.Scrolls {
			if s.Region != "list" || s.Overflow || s.DeltaX != 0 || s.DeltaY <= 0 {
				t.Fatalf("frame %d: unexpected scroll %+v", f.Frame, s)
			}
		}
	}

	final := trace.Final()
	if final["window"] != (TraceOffset{}) {
		t.Errorf("window offset = %+v, want untouched", final["window"])
	}
	if final["list"].Y <= 0 || final["list"].X != 0 {
		t.Errorf("list offset = %+v, want scrolled down", final["list"])
	}
	last := trace.Frames[len(trace.Frames)-1]
	if last.Dragging {
		t.Error("still dragging after release")
	}
	if last.PointerX != 250 || last.PointerY != 495 {
		t.Errorf("last pointer = (%v, %v)", last.PointerX, last.PointerY)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	sc, err := ParseScenario([]byte(listScenario))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	a := Simulate(sc, zerolog.Nop()).Final()
	b := Simulate(sc, zerolog.Nop()).Final()
	if a["list"] != b["list"] {
		t.Errorf("runs diverged: %+v vs %+v", a["list"], b["list"])
	}
}

func TestTraceFinalEmpty(t *testing.T) {
	if got := (&Trace{}).Final(); got != nil {
		t.Errorf("Final() = %v, want nil", got)
	}
}
