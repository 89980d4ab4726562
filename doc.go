// Package autoscroll scrolls regions automatically while the user drags
// near their edges, for [Ebitengine] scenes.
//
// The package has two halves. The engine ([Context], [Scheduler],
// [OverRegionScroller], [OverflowScroller]) decides each frame which region
// scrolls and by how much. The host ([Scene], [Node], [Camera]) is a small
// retained-mode scene graph that supplies what the engine needs: a frame
// clock, hit testing, element rectangles, and scroll offsets.
//
// # Quick start
//
//	scene := autoscroll.NewScene(800, 600)
//	list := autoscroll.NewScrollContainer("list", 100, 100, 300, 400, 300, 2000)
//	scene.Root().AddChild(list)
//
//	ctx := scene.AutoScroll()
//	unregister := ctx.OverRegion(autoscroll.SourceElement).Register(list, autoscroll.RegionOptions{})
//	defer unregister()
//
// Call [Scene.Update] once per tick from your [ebiten.Game]. Dragging an
// element inside list toward its bottom edge now scrolls it.
//
// # Speed
//
// A region's edge hitbox covers a quarter of its size, capped at 200px.
// Within the hitbox, speed grows as the pointer nears the edge and reaches
// its maximum in the half of the hitbox closest to the edge. A freshly
// entered region also ramps up over the first 300ms. Both ramps and the top
// speed are configurable per registration through [Config].
//
// # Nesting
//
// For nested registered regions, the innermost one that can still scroll
// toward an edge takes that axis for the frame. Axes no region took fall
// through to the window when it is registered with
// [OverRegionScroller.RegisterWindow].
//
// # Overflow
//
// [OverflowScroller] also scrolls a region while the pointer is outside it,
// within a declared reach beyond each edge. Outside the region, distance
// does not slow the scroll.
//
// [Ebitengine]: https://ebitengine.org
package autoscroll
