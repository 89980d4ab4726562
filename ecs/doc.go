// Package ecs provides ECS adapters for autoscroll's applied scroll events.
//
// The primary adapter is [NewDonburiStore], which publishes every scroll the
// engine applies into a [Donburi] world as a typed event. Subscribe to
// [ScrollEventType] in your ECS systems to react to region scrolling, for
// example to lazily load rows that scrolled into view.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
