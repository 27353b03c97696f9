package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog      EffectEnum = "localchan_effect_enum_log"
	EffectDispatch EffectEnum = "localchan_effect_enum_dispatch"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1, more than 1 partitions payloads by PartitionKey
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Partitionable payloads with the same PartitionKey are handled by the same worker, in order.
type Partitionable interface {
	PartitionKey() string
}

const Unpartitioned = "unpartitioned"
