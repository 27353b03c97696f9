package effects

import (
	"context"

	"github.com/on-the-ground/localchan/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/localchan/effects/model"
	"github.com/on-the-ground/localchan/shared/helper"
	"go.uber.org/zap"
)

// Effect is a unit of work produced by a root sink. It does nothing until the
// host performs it with a context that carries the matching effect handler.
type Effect func(context.Context)

// Perform runs effects in order. Nil effects are skipped.
func Perform(ctx context.Context, effs ...Effect) {
	for _, eff := range effs {
		if eff != nil {
			eff(ctx)
		}
	}
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// With config.NumWorkers > 1, payloads are hashed by PartitionKey() onto workers, so
// payloads sharing a key are handled in order.
//
// Usage:
//
//	ctx, end := WithFireAndForgetEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithFireAndForgetEffectHandler[P effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Sugar().Debugf("created fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Sugar().Debugf("closed fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// FireAndForgetEffect hands payload to the handler registered for enum.
//
// Panics if no handler is registered for the given enum, or if the registered
// handler does not accept P.
func FireAndForgetEffect[P effectmodel.Partitionable](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) {
	handler := helper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	handler.FireAndForgetEffect(ctx, payload)
}

// HasHandler reports whether ctx carries a handler for enum.
func HasHandler(ctx context.Context, enum effectmodel.EffectEnum) bool {
	_, err := getHandler(ctx, enum)
	return err == nil
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
