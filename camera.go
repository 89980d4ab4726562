package autoscroll

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the X and Y offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the window: the viewport onto the scene's root content. Its
// scroll offset is the root node's scroll offset, so every node's Rect moves
// with it.
type Camera struct {
	root        *Node
	scrollTween *scrollAnim
}

// newCamera creates a camera over root.
func newCamera(root *Node) *Camera {
	return &Camera{root: root}
}

// SetViewport sets the window size in pixels.
func (c *Camera) SetViewport(width, height float64) {
	c.root.Width = width
	c.root.Height = height
	c.root.ScrollTo(c.root.ScrollX, c.root.ScrollY)
}

// SetContentSize sets the scrollable document size.
func (c *Camera) SetContentSize(width, height float64) {
	c.root.ContentWidth = width
	c.root.ContentHeight = height
	c.root.ScrollTo(c.root.ScrollX, c.root.ScrollY)
}

// Rect returns the viewport rectangle.
func (c *Camera) Rect() Rect {
	return c.root.Rect()
}

// Scroll returns the current window scroll offset.
func (c *Camera) Scroll() Vec2 {
	return Vec2{X: c.root.ScrollX, Y: c.root.ScrollY}
}

// ScrollBy moves the window scroll offset, clamped to the document.
func (c *Camera) ScrollBy(delta Vec2) {
	c.root.ScrollBy(delta)
}

// CanScrollOnEdge reports whether the window can scroll further toward e.
func (c *Camera) CanScrollOnEdge(e Edge) bool {
	return c.root.CanScrollOnEdge(e)
}

// ScrollTo animates the window to the given scroll offset over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.root.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.root.ScrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// StopScrolling cancels a ScrollTo animation, leaving the offset where it is.
func (c *Camera) StopScrolling() {
	c.scrollTween = nil
}

// update advances the scroll animation. Called from Scene.Update().
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	x, y := c.root.ScrollX, c.root.ScrollY
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		x = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		y = float64(val)
		c.scrollTween.doneY = done
	}
	c.root.ScrollTo(x, y)
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}
