package effects

import (
	"context"
	"fmt"

	effectmodel "github.com/on-the-ground/localchan/effects/model"
)

var ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

// getHandler checks whether a handler for the given EffectEnum is registered in the context.
// Returns an error if not found.
func getHandler(ctx context.Context, enum effectmodel.EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEffectHandler, enum)
	}
	return raw, nil
}
