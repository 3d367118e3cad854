// Package ecs provides ECS adapters for flipbook's event system.
//
// The primary adapter is [NewDonburiStore], which bridges book events
// (session start/end, reveal, page change, ignored input) into a [Donburi]
// world as typed events. Subscribe to [BookEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	book.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
