package log

import (
	"context"

	"github.com/on-the-ground/localchan/effects"
	effectmodel "github.com/on-the-ground/localchan/effects/model"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
	LogDebug LogLevel = "debug"
)

// Payload is the payload of the log effect.
type Payload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

func (Payload) PartitionKey() string {
	return effectmodel.Unpartitioned
}

// WithZapEffectHandler registers a fire-and-forget log effect handler writing to logger.
// The returned teardown closes the handler and syncs the logger; use the context it
// returns afterwards.
func WithZapEffectHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	return effects.WithFireAndForgetEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(bufferSize, 1),
		effectmodel.EffectLog,
		func(ctx context.Context, payload Payload) {
			write(logger, payload)
		},
		func() {
			if err := logger.Sync(); err != nil {
				logger.Warn("failed to sync logger", zap.Error(err))
			}
		},
	)
}

// write emits payload on logger at its level. Unknown levels are written as info.
func write(logger *zap.Logger, payload Payload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for k, v := range payload.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch payload.Level {
	case LogWarn:
		logger.Warn(payload.Message, fields...)
	case LogError:
		logger.Error(payload.Message, fields...)
	case LogDebug:
		logger.Debug(payload.Message, fields...)
	default:
		logger.Info(payload.Message, fields...)
	}
}

// LogEffect performs the log effect. Without a registered log handler the
// message is written to zap's global logger instead, so logging never panics.
func LogEffect(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	payload := Payload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	}
	if !effects.HasHandler(ctx, effectmodel.EffectLog) {
		write(zap.L(), payload)
		return
	}
	effects.FireAndForgetEffect(ctx, effectmodel.EffectLog, payload)
}
