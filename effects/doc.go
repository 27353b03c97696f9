// Package effects is the host runtime that stands behind a localchan root sink.
//
// Components emit through localchan channels and stay pure. The root of every
// channel tree is a Sink, whose Send does not deliver anything by itself: it
// returns an Effect. The host decides when to perform that effect, and performing
// it hands the stamped event to the effect handler registered in the context.
//
// # Handlers
//
// Handlers are registered via `WithXxxEffectHandler(ctx, ...)` and live in the
// returned context until the returned teardown is called:
//
//   - WithSinkEffectHandler: the event loop for Sink[P]
//   - WithFireAndForgetEffectHandler: any payload, handled asynchronously
//
// With EffectScopeConfig.NumWorkers > 1 payloads are partitioned by PartitionKey,
// so events from the same partition are handled in the order they were enqueued.
//
// Example:
//
//	ctx, end := effects.WithSinkEffectHandler(ctx, effectmodel.NewEffectScopeConfig(64, 1),
//	    effectmodel.EffectDispatch, func(ctx context.Context, env effects.Envelope[AppEvent]) {
//	        update(env.Payload)
//	    })
//	defer end()
//
//	sink := effects.NewSink[AppEvent](effectmodel.EffectDispatch)
//	search := localchan.Create[SearchEvent, AppEvent, effects.Effect](toSearch, sink)
//	effects.Perform(ctx, search.Send(Clicked{}))
package effects
