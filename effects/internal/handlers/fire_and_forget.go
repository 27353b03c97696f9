package handlers

import (
	"context"
	"sync"

	"github.com/google/uuid"
	effectmodel "github.com/on-the-ground/localchan/effects/model"
	"go.uber.org/zap"
)

// FireAndForgetHandler enqueues payloads for asynchronous handling and never
// reports a result back to the sender.
type FireAndForgetHandler[T effectmodel.Partitionable] struct {
	*fireAndForgetEffectScope[T]
}

func NewFireAndForgetHandler[T effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	return FireAndForgetHandler[T]{
		fireAndForgetEffectScope: newFireAndForgetEffectScope(ctx, config, handleFn, teardown),
	}
}

// FireAndForgetEffect blocks until payload is enqueued or ctx is done.
// Payloads sent after Close are dropped.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) {
	if ffh.scopeCtx.Err() != nil {
		zap.L().Debug("effect dropped, handler closed",
			zap.String("effectId", ffh.EffectId),
			zap.Any("payload", payload),
		)
		return
	}

	select {
	case <-ctx.Done():
	case <-ffh.scopeCtx.Done():
	case ffh.dispatcher.GetChannelOf(payload) <- payload:
	}
}

type fireAndForgetEffectScope[T effectmodel.Partitionable] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	scopeCtx   context.Context
	closeOnce  sync.Once
	closeFn    func()
}

// Close stops the workers and runs the teardown. Safe to call more than once.
func (ffs *fireAndForgetEffectScope[T]) Close() {
	ffs.closeOnce.Do(func() {
		ffs.closeFn()
		zap.L().Debug("effect scope closed", zap.String("effectId", ffs.EffectId))
	})
}

func newFireAndForgetEffectScope[T effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T),
	teardown func(),
) *fireAndForgetEffectScope[T] {
	ctx, cancelFn := context.WithCancel(ctx)

	return &fireAndForgetEffectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: NewWorkerDispatcher(ctx, config, handleFn),
		scopeCtx:   ctx,
		closeFn: func() {
			cancelFn()
			teardown()
		},
	}
}
