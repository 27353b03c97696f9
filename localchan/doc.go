// Package localchan routes narrowly-typed events from nested components up to a
// single root sink, without any component knowing the root's event type.
//
// # What is a local channel?
//
// A root process owns one sink accepting one "root event" type R. A component
// deep inside the tree only knows its own event type L. A LocalChannel[L, E] is
// the capability "accept an L, turn it into whatever my parent accepts, and pass
// it on". E is the opaque effect produced by the root sink; this package never
// inspects or executes it.
//
// Channels are derived, never mutated:
//
//   - Create wraps a RootSink with a first mapping.
//   - Localize narrows an existing channel with one more mapping.
//   - Send runs the composed chain and returns the root sink's effect.
//
// Each nesting level only knows the level directly above it, so a component can be
// moved under a different parent by changing the single mapping its parent passes.
//
// # Purity
//
// Mappings handed to Create and Localize must be pure: no sends, no I/O, no
// dependence on mutable state. Go cannot enforce this, but the composition laws
// (associativity, identity) only hold for pure mappings.
//
// # Concurrency
//
// A LocalChannel is an immutable value. Any number of goroutines may share and
// send on derived channels, as long as the root sink's Send is itself safe for
// concurrent use.
//
// Example:
//
//	type AppEvent interface{ appEvent() }
//	type Search struct{ Event SearchEvent }
//
//	root := localchan.SinkFunc[AppEvent, effects.Effect](sink.Send)
//	search := localchan.Create(func(e SearchEvent) AppEvent { return Search{e} }, root)
//	eff := search.Send(Clicked{})
//	eff(ctx)
package localchan
