package effects

import (
	"context"
	"time"

	effectmodel "github.com/on-the-ground/localchan/effects/model"
	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// sentWindow widens the send instant so clocks read right after Send still fall inside it.
const sentWindow = time.Millisecond

type TimeBounded interface {
	TimeSpan() TimeSpan
}

// Envelope is what a Sink actually enqueues: the root event plus when it was sent.
type Envelope[P any] struct {
	Payload P
	Sent    TimeSpan
}

var _ TimeBounded = Envelope[any]{}

func (e Envelope[P]) TimeSpan() TimeSpan {
	return e.Sent
}

// PartitionKey delegates to the payload when it is Partitionable.
func (e Envelope[P]) PartitionKey() string {
	if p, ok := any(e.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return effectmodel.Unpartitioned
}

// Sink is a root sink for events of type P. Its Send returns an Effect that,
// once performed, enqueues the event onto the handler registered for the sink's enum
// with WithSinkEffectHandler.
//
// Sink holds no state and is safe for concurrent use.
type Sink[P any] struct {
	enum effectmodel.EffectEnum
}

func NewSink[P any](enum effectmodel.EffectEnum) Sink[P] {
	return Sink[P]{enum: enum}
}

// Send stamps payload and defers delivery to the returned Effect.
func (s Sink[P]) Send(payload P) Effect {
	env := Envelope[P]{Payload: payload, Sent: sentNow()}
	return func(ctx context.Context) {
		FireAndForgetEffect(ctx, s.enum, env)
	}
}

// WithSinkEffectHandler registers the event loop behind Sink[P] values created with enum.
func WithSinkEffectHandler[P any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, Envelope[P]),
	teardown ...func(),
) (context.Context, func() context.Context) {
	return WithFireAndForgetEffectHandler(ctx, config, enum, handleFn, teardown...)
}

func sentNow() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-sentWindow), now.Add(sentWindow))
}
