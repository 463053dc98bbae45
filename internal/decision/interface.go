package decision

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Decide classifies input.UserInput and routes it to the matching service.
	Decide(ctx context.Context, input DecideInput) (DecideOutput, error)
}
