package autoscroll

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Scenario step actions.
const (
	ActionPress   = "press"
	ActionMove    = "move"
	ActionRelease = "release"
	ActionDrag    = "drag"
	ActionWait    = "wait"
)

// Scenario is a scripted headless run: a window, a tree of scroll regions
// with their auto-scroll registrations, and the pointer steps to replay.
//
//	name: nested list
//	window:
//	  width: 800
//	  height: 600
//	  content_height: 4000
//	  auto_scroll: {}
//	nodes:
//	  - name: list
//	    x: 100
//	    y: 100
//	    width: 300
//	    height: 400
//	    content_height: 2000
//	    over_region: {max_scroll_speed: fast}
//	steps:
//	  - {action: drag, x: 250, y: 200, to_x: 250, to_y: 495, frames: 10}
//	  - {action: wait, frames: 60}
//	  - {action: release, x: 250, y: 495}
type Scenario struct {
	Name    string         `yaml:"name"`
	FrameMs float64        `yaml:"frame_ms" validate:"gte=0"`
	Window  ScenarioWindow `yaml:"window" validate:"required"`
	Nodes   []ScenarioNode `yaml:"nodes" validate:"dive"`
	Steps   []ScenarioStep `yaml:"steps" validate:"required,min=1,dive"`
}

// ScenarioWindow describes the window viewport and its document.
type ScenarioWindow struct {
	Width         float64 `yaml:"width" validate:"gt=0"`
	Height        float64 `yaml:"height" validate:"gt=0"`
	ContentWidth  float64 `yaml:"content_width" validate:"gte=0"`
	ContentHeight float64 `yaml:"content_height" validate:"gte=0"`
	ScrollX       float64 `yaml:"scroll_x" validate:"gte=0"`
	ScrollY       float64 `yaml:"scroll_y" validate:"gte=0"`
	// AutoScroll registers the window as the fallback scroller when set.
	AutoScroll *FileConfig `yaml:"auto_scroll"`
}

// ScenarioNode is one node of the scene tree. Positions are relative to the
// parent's content origin.
type ScenarioNode struct {
	Name          string            `yaml:"name" validate:"required"`
	X             float64           `yaml:"x"`
	Y             float64           `yaml:"y"`
	Width         float64           `yaml:"width" validate:"gt=0"`
	Height        float64           `yaml:"height" validate:"gt=0"`
	ContentWidth  float64           `yaml:"content_width" validate:"gte=0"`
	ContentHeight float64           `yaml:"content_height" validate:"gte=0"`
	ScrollX       float64           `yaml:"scroll_x" validate:"gte=0"`
	ScrollY       float64           `yaml:"scroll_y" validate:"gte=0"`
	ZIndex        int               `yaml:"z_index"`
	OverRegion    *FileConfig       `yaml:"over_region"`
	Overflow      *ScenarioOverflow `yaml:"overflow"`
	Children      []ScenarioNode    `yaml:"children" validate:"dive"`
}

// ScenarioOverflow is an overflow registration.
type ScenarioOverflow struct {
	Reach       Overflow    `yaml:"reach"`
	AllowedAxis string      `yaml:"allowed_axis" validate:"omitempty,oneof=all vertical horizontal"`
	Config      *FileConfig `yaml:"config"`
}

// ScenarioStep is one scripted input action.
type ScenarioStep struct {
	Action string  `yaml:"action" validate:"required,oneof=press move release drag wait"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ToX    float64 `yaml:"to_x"`
	ToY    float64 `yaml:"to_y"`
	Frames int     `yaml:"frames" validate:"gte=0"`
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

// LoadScenarioFile reads and parses a YAML scenario file.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return ParseScenario(data)
}

// Validate checks field constraints, unique node names, and overflow reach.
func (sc *Scenario) Validate() error {
	if err := validateStruct(sc); err != nil {
		return err
	}
	seen := make(map[string]bool)
	var walk func(nodes []ScenarioNode) error
	walk = func(nodes []ScenarioNode) error {
		for _, n := range nodes {
			if seen[n.Name] {
				return &ValidationError{Field: "nodes", Message: fmt.Sprintf("duplicate node name %q", n.Name)}
			}
			seen[n.Name] = true
			if n.Overflow != nil {
				if err := n.Overflow.Reach.Validate(); err != nil {
					return &ValidationError{Field: n.Name + ".overflow.reach", Message: err.Error()}
				}
			}
			if err := walk(n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(sc.Nodes)
}

func (sc *Scenario) frameDuration() time.Duration {
	if sc.FrameMs > 0 {
		return time.Duration(sc.FrameMs * float64(time.Millisecond))
	}
	return time.Second / nominalFrameRate
}

// staticConfig returns a GetConfiguration callback for a file config, or nil.
func staticConfig(fc *FileConfig) func(Feedback) Config {
	if fc == nil {
		return nil
	}
	cfg := fc.Config()
	return func(Feedback) Config { return cfg }
}

func parseAllowedAxis(s string) AllowedAxis {
	switch s {
	case "vertical":
		return AllowVertical
	case "horizontal":
		return AllowHorizontal
	default:
		return AllowAll
	}
}

// Build creates a headless scene for the scenario and registers every
// declared auto-scroll region. It returns the scene and its nodes by name.
func (sc *Scenario) Build(log zerolog.Logger) (*Scene, map[string]*Node) {
	scene := NewScene(sc.Window.Width, sc.Window.Height)
	scene.SetHeadless(true)
	scene.SetLogger(log)
	cam := scene.Camera()
	cam.SetContentSize(sc.Window.ContentWidth, sc.Window.ContentHeight)
	scene.Root().ScrollTo(sc.Window.ScrollX, sc.Window.ScrollY)

	ctx := scene.AutoScroll()
	if sc.Window.AutoScroll != nil {
		ctx.OverRegion(SourceElement).RegisterWindow(RegionOptions{
			GetConfiguration: staticConfig(sc.Window.AutoScroll),
		})
	}

	nodes := make(map[string]*Node)
	var build func(parent *Node, specs []ScenarioNode)
	build = func(parent *Node, specs []ScenarioNode) {
		for _, ns := range specs {
			n := NewScrollContainer(ns.Name, ns.X, ns.Y, ns.Width, ns.Height, ns.ContentWidth, ns.ContentHeight)
			n.ZIndex = ns.ZIndex
			parent.AddChild(n)
			n.ScrollTo(ns.ScrollX, ns.ScrollY)
			nodes[ns.Name] = n

			if ns.OverRegion != nil {
				ctx.OverRegion(SourceElement).Register(n, RegionOptions{
					GetConfiguration: staticConfig(ns.OverRegion),
				})
			}
			if ov := ns.Overflow; ov != nil {
				reach := ov.Reach
				axis := parseAllowedAxis(ov.AllowedAxis)
				ctx.Overflow(SourceElement).Register(n, OverflowOptions{
					GetConfiguration: staticConfig(ov.Config),
					GetAllowedAxis:   func(Feedback) AllowedAxis { return axis },
					GetOverflow:      func() Overflow { return reach },
				})
			}
			build(n, ns.Children)
		}
	}
	build(scene.Root(), sc.Nodes)
	return scene, nodes
}
