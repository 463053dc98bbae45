package usecase

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"decision-router/internal/decision"
)

// summary queries the three services concurrently. The first failure cancels
// the remaining calls and fails the whole summary.
func (uc *implUseCase) summary(ctx context.Context, today string) (decision.DecideOutput, error) {
	var health, productivity, cognitive json.RawMessage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		health, err = uc.call(gctx, decision.ServiceHealth, uc.endpoints.Health, decision.ToolHealthSignal, map[string]any{decision.DataKeyDate: today})
		return err
	})
	g.Go(func() error {
		var err error
		productivity, err = uc.call(gctx, decision.ServiceProductivity, uc.endpoints.Productivity, decision.ToolSummary, map[string]any{})
		return err
	})
	g.Go(func() error {
		var err error
		cognitive, err = uc.call(gctx, decision.ServiceCognitive, uc.endpoints.Cognitive, decision.ToolCognitiveSignal, map[string]any{decision.DataKeyDate: today})
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Warnf(ctx, "%s: aborted: %v", LogPrefixSummary, err)
		return decision.DecideOutput{}, err
	}

	return decision.DecideOutput{
		Summary: &decision.SummaryResult{
			Date:          today,
			Health:        health,
			Productivity:  productivity,
			Cognitive:     cognitive,
			FinalDecision: decision.FinalDecision,
		},
	}, nil
}
