package event

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the in-memory event publisher.
var Module = fx.Module("event",
	fx.Provide(func(log *zap.Logger) Publisher {
		return NewInMemoryPublisher(log)
	}),
)
