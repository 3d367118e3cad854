package ecs

import (
	"github.com/phanxgames/flipbook"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BookEventType is the Donburi event type for flipbook events.
var BookEventType = events.NewEventType[flipbook.BookEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are published to BookEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) flipbook.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event flipbook.BookEvent) {
	BookEventType.Publish(s.world, event)
}
