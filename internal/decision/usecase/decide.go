package usecase

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"decision-router/internal/decision"
	"decision-router/internal/router"
	"decision-router/pkg/metrics"
)

// Decide classifies the request and runs the matching flow.
func (uc *implUseCase) Decide(ctx context.Context, input decision.DecideInput) (decision.DecideOutput, error) {
	data := input.Data
	if data == nil {
		data = map[string]any{}
	}

	if err := decision.ValidateData(data); err != nil {
		uc.metrics.ObserveDecision(string(router.DomainUnknown), metrics.OutcomeInvalid)
		return decision.DecideOutput{}, err
	}

	domain := uc.classifier.Classify(input.UserInput)
	today := uc.calendar.Today()

	ctx, span := uc.tracer.Start(ctx, SpanDecide)
	defer span.End()
	span.SetAttributes(attribute.String(AttrDomain, string(domain)))

	uc.l.Infof(ctx, "%s: classified as %s", LogPrefixDecide, domain)

	var (
		output decision.DecideOutput
		err    error
	)
	switch domain {
	case router.DomainHealth:
		output, err = uc.health(ctx, data, today)
	case router.DomainProductivity:
		output, err = uc.productivity(ctx, data)
	case router.DomainCognitive:
		output, err = uc.cognitive(ctx, data, today)
	case router.DomainSummary:
		output, err = uc.summary(ctx, today)
	default:
		output = uc.unrecognized()
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.metrics.ObserveDecision(string(domain), outcomeOf(err))
		uc.l.Errorf(ctx, "%s: %s flow: %v", LogPrefixDecide, domain, err)
		return decision.DecideOutput{}, err
	}

	uc.metrics.ObserveDecision(string(domain), metrics.OutcomeSuccess)
	output.Domain = domain
	return output, nil
}

func (uc *implUseCase) health(ctx context.Context, data map[string]any, today string) (decision.DecideOutput, error) {
	ep := uc.endpoints.Health

	if _, err := uc.call(ctx, decision.ServiceHealth, ep, decision.ToolAddHealthData, data); err != nil {
		return decision.DecideOutput{}, err
	}

	signal, err := uc.call(ctx, decision.ServiceHealth, ep, decision.ToolHealthSignal, dateArgs(data, today))
	if err != nil {
		return decision.DecideOutput{}, err
	}

	return decision.DecideOutput{
		Routed: &decision.RoutedResult{HandledBy: decision.HandledByHealth, Signal: signal},
	}, nil
}

func (uc *implUseCase) productivity(ctx context.Context, data map[string]any) (decision.DecideOutput, error) {
	signal, err := uc.call(ctx, decision.ServiceProductivity, uc.endpoints.Productivity, decision.ToolSummary, data)
	if err != nil {
		return decision.DecideOutput{}, err
	}

	return decision.DecideOutput{
		Routed: &decision.RoutedResult{HandledBy: decision.HandledByProductivity, Signal: signal},
	}, nil
}

func (uc *implUseCase) cognitive(ctx context.Context, data map[string]any, today string) (decision.DecideOutput, error) {
	ep := uc.endpoints.Cognitive

	if _, err := uc.call(ctx, decision.ServiceCognitive, ep, decision.ToolAddData, data); err != nil {
		return decision.DecideOutput{}, err
	}

	signal, err := uc.call(ctx, decision.ServiceCognitive, ep, decision.ToolCognitiveSignal, dateArgs(data, today))
	if err != nil {
		return decision.DecideOutput{}, err
	}

	return decision.DecideOutput{
		Routed: &decision.RoutedResult{HandledBy: decision.HandledByCognitive, Signal: signal},
	}, nil
}

func (uc *implUseCase) unrecognized() decision.DecideOutput {
	return decision.DecideOutput{
		Unrecognized: &decision.UnrecognizedResult{
			Error: decision.UnrecognizedError,
			Hint:  decision.UnrecognizedHint,
		},
	}
}
