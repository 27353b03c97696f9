package localchan

import (
	"errors"
	"fmt"
)

var ErrUnmapped = errors.New("localchan: value has no image under mapping")

// MappingError is returned when a partial mapping has no image for a value.
type MappingError struct {
	From  string // source type
	To    string // target type
	Value any
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%v: %s(%+v) -> %s", ErrUnmapped, e.From, e.Value, e.To)
}

func (e *MappingError) Unwrap() error {
	return ErrUnmapped
}

// Partial is a channel whose chain contains at least one mapping that may
// refuse a value. A refused value never reaches the root sink.
type Partial[T, E any] struct {
	relay func(T) (E, error)
}

// Lift turns a total channel into a Partial that never fails.
func Lift[T, E any](ch LocalChannel[T, E]) Partial[T, E] {
	if ch.IsZero() {
		panic(ErrZeroChannel)
	}
	relay := ch.relay
	return Partial[T, E]{
		relay: func(v T) (E, error) {
			return relay(v), nil
		},
	}
}

// CreatePartial is Create for a mapping that reports ok=false when it has no image.
func CreatePartial[L, R, E any](generalize func(L) (R, bool), sink RootSink[R, E]) Partial[L, E] {
	if generalize == nil {
		panic(ErrNilMapping)
	}
	if isNilSink(sink) {
		panic(ErrNilSink)
	}
	return Partial[L, E]{
		relay: func(v L) (E, error) {
			mapped, ok := generalize(v)
			if !ok {
				var zero E
				return zero, newMappingError[L, R](v)
			}
			return sink.Send(mapped), nil
		},
	}
}

// LocalizePartial is Localize for a mapping that reports ok=false when it has no image.
// A MappingError from any outer layer is returned unchanged.
func LocalizePartial[L, I, E any](generalize func(L) (I, bool), parent Partial[I, E]) Partial[L, E] {
	if generalize == nil {
		panic(ErrNilMapping)
	}
	if parent.relay == nil {
		panic(ErrZeroChannel)
	}
	relay := parent.relay
	return Partial[L, E]{
		relay: func(v L) (E, error) {
			mapped, ok := generalize(v)
			if !ok {
				var zero E
				return zero, newMappingError[L, I](v)
			}
			return relay(mapped)
		},
	}
}

// Send relays v toward the root sink. On a *MappingError the root sink was not called
// and the returned effect is the zero E.
func (p Partial[T, E]) Send(v T) (E, error) {
	if p.relay == nil {
		panic(ErrZeroChannel)
	}
	return p.relay(v)
}

func newMappingError[From, To any](v From) *MappingError {
	return &MappingError{
		From:  typeName[From](),
		To:    typeName[To](),
		Value: v,
	}
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
