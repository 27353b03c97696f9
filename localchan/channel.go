package localchan

import (
	"errors"
	"reflect"
)

var (
	ErrNilSink     = errors.New("localchan: nil root sink")
	ErrNilMapping  = errors.New("localchan: nil mapping")
	ErrZeroChannel = errors.New("localchan: channel was not created with Create or Localize")
)

// LocalChannel emits values of type T toward a root sink producing effects of type E.
//
// The zero value is unusable; obtain channels from Create, Localize or FromSink.
type LocalChannel[T, E any] struct {
	relay func(T) E
}

// Create derives a channel from the root sink. Sending v on it calls
// sink.Send(generalize(v)). Nothing is sent during construction.
//
// generalize must be pure and total.
func Create[L, R, E any](generalize func(L) R, sink RootSink[R, E]) LocalChannel[L, E] {
	if generalize == nil {
		panic(ErrNilMapping)
	}
	if isNilSink(sink) {
		panic(ErrNilSink)
	}
	return LocalChannel[L, E]{
		relay: func(v L) E {
			return sink.Send(generalize(v))
		},
	}
}

// FromSink exposes the root sink itself as a channel of the root event type.
func FromSink[R, E any](sink RootSink[R, E]) LocalChannel[R, E] {
	return Create(Identity[R], sink)
}

// Localize narrows parent to a more specific event type. The result composes
// generalize onto parent's existing chain; it never goes back to the root.
//
// generalize must be pure and must not send on any channel.
func Localize[L, I, E any](generalize func(L) I, parent LocalChannel[I, E]) LocalChannel[L, E] {
	if generalize == nil {
		panic(ErrNilMapping)
	}
	if parent.IsZero() {
		panic(ErrZeroChannel)
	}
	relay := parent.relay
	return LocalChannel[L, E]{
		relay: func(v L) E {
			return relay(generalize(v))
		},
	}
}

// Send relays v through every mapping up to the root sink and returns the
// effect the root sink produced, untouched. The root sink is called exactly once.
func (c LocalChannel[T, E]) Send(v T) E {
	if c.relay == nil {
		panic(ErrZeroChannel)
	}
	return c.relay(v)
}

// IsZero reports whether c is the zero LocalChannel.
func (c LocalChannel[T, E]) IsZero() bool {
	return c.relay == nil
}

// Send is the function form of LocalChannel.Send.
func Send[T, E any](ch LocalChannel[T, E], v T) E {
	return ch.Send(v)
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

func isNilSink[R, E any](sink RootSink[R, E]) bool {
	if sink == nil {
		return true
	}
	// typed nils wrapped in the interface
	rv := reflect.ValueOf(sink)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
