package autoscroll

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("autoscroll debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLog.Warn().Int("depth", depth).Int("max", debugMaxTreeDepth).Str("node", n.Name).
			Msg("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLog.Warn().Int("children", len(n.children)).Int("max", debugMaxChildCount).Str("node", n.Name).
			Msg("child count exceeds threshold")
	}
}

var (
	debugNodeColor     = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	debugRegionColor   = color.RGBA{R: 0x30, G: 0xa0, B: 0xff, A: 0xff}
	debugHitboxColor   = color.RGBA{R: 0xff, G: 0xa0, B: 0x30, A: 0xff}
	debugOverflowColor = color.RGBA{R: 0xff, G: 0x40, B: 0xa0, A: 0xff}
)

// DrawDebug outlines every visible node and the edge hitboxes of every
// auto-scroll registration onto screen.
func (s *Scene) DrawDebug(screen *ebiten.Image) {
	s.drawNodeOutlines(screen, s.root)
	if s.autoScroll == nil {
		return
	}
	for kind := range numSourceKinds {
		if o := s.autoScroll.overRegion[kind]; o != nil {
			for n, reg := range o.regions {
				cfg := resolveConfig(reg.opts.GetConfiguration, Feedback{Element: n})
				rect := n.Rect()
				strokeRect(screen, rect, 2, debugRegionColor)
				for _, e := range edges {
					strokeRect(screen, overRegionHitbox(e, rect, cfg), 1, debugHitboxColor)
				}
			}
		}
		if o := s.autoScroll.overflow[kind]; o != nil {
			for _, reg := range o.regs {
				cfg := resolveConfig(reg.opts.GetConfiguration, Feedback{Element: reg.node})
				overflow := reg.overflow()
				rect := reg.node.Rect()
				for _, e := range edges {
					hb := overflowHitboxes(e, rect, overflow.reach(e), cfg)
					strokeRect(screen, hb.insideOfEdge, 1, debugHitboxColor)
					if hb.outsideOfEdge.mainAxisSize(e) > 0 {
						strokeRect(screen, hb.outsideOfEdge, 1, debugOverflowColor)
					}
				}
			}
		}
	}
}

func (s *Scene) drawNodeOutlines(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	strokeRect(screen, n.Rect(), 1, debugNodeColor)
	for _, child := range n.children {
		s.drawNodeOutlines(screen, child)
	}
}

// visiblePart clips r to the image bounds b.
func visiblePart(r Rect, b image.Rectangle) Rect {
	return r.Intersect(Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())})
}

func strokeRect(screen *ebiten.Image, r Rect, width float32, clr color.Color) {
	r = visiblePart(r, screen.Bounds())
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, clr, false)
}
