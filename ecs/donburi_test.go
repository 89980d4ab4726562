package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/autoscroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []autoscroll.ScrollEvent
	ScrollEventType.Subscribe(world, func(w donburi.World, e autoscroll.ScrollEvent) {
		received = append(received, e)
	})

	store.EmitEvent(autoscroll.ScrollEvent{
		Source:   autoscroll.SourceElement,
		EntityID: 42,
		Delta:    autoscroll.Vec2{Y: 15},
	})
	store.EmitEvent(autoscroll.ScrollEvent{
		Source:   autoscroll.SourceExternal,
		Overflow: true,
		Delta:    autoscroll.Vec2{X: -3},
	})

	// Events are queued; process them.
	ScrollEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.EntityID != 42 || e0.Delta.Y != 15 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if !e1.Overflow || e1.Source != autoscroll.SourceExternal || e1.Delta.X != -3 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store autoscroll.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	ScrollEventType.Subscribe(world, func(w donburi.World, e autoscroll.ScrollEvent) {
		count1++
	})
	ScrollEventType.Subscribe(world, func(w donburi.World, e autoscroll.ScrollEvent) {
		count2++
	})

	store.EmitEvent(autoscroll.ScrollEvent{Delta: autoscroll.Vec2{Y: 1}})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_SceneDrag(t *testing.T) {
	world := donburi.NewWorld()

	scene := autoscroll.NewScene(800, 600)
	scene.SetHeadless(true)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	scene.SetClock(func() time.Time { return now })
	scene.SetEntityStore(NewDonburiStore(world))

	list := autoscroll.NewScrollContainer("list", 0, 0, 300, 400, 300, 2000)
	list.EntityID = 7
	scene.Root().AddChild(list)
	scene.AutoScroll().OverRegion(autoscroll.SourceElement).Register(list, autoscroll.RegionOptions{})

	var received []autoscroll.ScrollEvent
	ScrollEventType.Subscribe(world, func(w donburi.World, e autoscroll.ScrollEvent) {
		received = append(received, e)
	})

	scene.InjectPress(150, 100)
	scene.InjectMove(150, 395)
	for range 5 {
		now = now.Add(time.Second / 60)
		scene.Update()
	}
	ScrollEventType.ProcessEvents(world)

	if len(received) == 0 {
		t.Fatal("expected scroll events from the drag")
	}
	e := received[0]
	if e.Region != list || e.EntityID != 7 {
		t.Errorf("event region = %v, entity = %d", e.Region, e.EntityID)
	}
	if e.Overflow || e.Delta.Y <= 0 || e.Delta.X != 0 {
		t.Errorf("event = %+v, want positive vertical over-region delta", e)
	}
	if list.ScrollY <= 0 {
		t.Errorf("list.ScrollY = %v, want > 0", list.ScrollY)
	}
}
