package ecs

import (
	"github.com/phanxgames/autoscroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEventType is the Donburi event type for applied auto-scroll changes.
var ScrollEventType = events.NewEventType[autoscroll.ScrollEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Scroll
// events are queued on ScrollEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) autoscroll.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event autoscroll.ScrollEvent) {
	ScrollEventType.Publish(s.world, event)
}
