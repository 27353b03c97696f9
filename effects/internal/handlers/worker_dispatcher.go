package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/localchan/effects/model"
	"go.uber.org/zap"
)

// --- common interface ---

// WorkerDispatcher picks the worker channel a payload is enqueued on.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
}

// NewWorkerDispatcher returns a single queue for one worker, a partitioned queue otherwise.
func NewWorkerDispatcher[T effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	if config.NumWorkers <= 1 {
		return NewSingleQueue(ctx, config.BufferSize, handleFn)
	}
	return NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, handleFn)
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	ready := make(chan struct{})

	go func(ch chan T) {
		close(ready)
		runWorker(ctx, ch, handleFn)
	}(effCh)

	<-ready

	return singleQueue[T]{effectCh: effCh}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		ready.Add(1)
		ch := make(chan T, bufferSize)
		go func(ch chan T) {
			ready.Done()
			runWorker(ctx, ch, handleFn)
		}(ch)
		channels[i] = ch
	}
	ready.Wait()
	return partitionedQueue[T]{effectChs: channels}
}

// runWorker drains ch until ctx is done. A panicking handleFn is logged and the
// worker keeps going with the next message.
//
// ch is never closed: producers may still hold it, and they stop on the scope
// context instead. Messages left in the buffer are dropped.
func runWorker[T any](ctx context.Context, ch chan T, handleFn func(context.Context, T)) {
	for {
		select {
		case msg := <-ch:
			handleSafely(ctx, msg, handleFn)
		case <-ctx.Done():
			return
		}
	}
}

func handleSafely[T any](ctx context.Context, msg T, handleFn func(context.Context, T)) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("panic in effect handler",
				zap.Any("payload", msg),
				zap.Any("error", r),
			)
		}
	}()
	handleFn(ctx, msg)
}
