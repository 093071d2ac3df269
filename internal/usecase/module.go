package usecase

import "go.uber.org/fx"

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	SystemClock,
	NewWriteLocks,
	fx.Annotate(NewMonotonicIDGenerator, fx.As(new(IDGenerator))),
	NewIntakeUseCase,
	NewModerationUseCase,
	NewRetrievalUseCase,
)
