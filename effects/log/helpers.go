package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// WithTestEffectHandler registers a log handler backed by an in-memory zap core.
// Entries are visible through the returned ObservedLogs once the handler has
// drained them; entries still buffered when the teardown runs are dropped.
func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, end := WithZapEffectHandler(ctx, 16, zap.New(core))
	return ctx, end, logs
}
