package localchan

// RootSink is the externally-owned endpoint every event finally reaches.
//
// Send must accept any R and may be called from many goroutines at once.
// Delivery, ordering and backpressure are entirely up to the implementation.
type RootSink[R, E any] interface {
	Send(R) E
}

// SinkFunc adapts a plain function to RootSink.
type SinkFunc[R, E any] func(R) E

func (f SinkFunc[R, E]) Send(v R) E {
	return f(v)
}
