package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"decision-router/internal/decision"
	"decision-router/pkg/mcp"
	"decision-router/pkg/metrics"
)

// call runs one tool call under the per-call timeout and wraps any failure
// in a DownstreamError.
func (uc *implUseCase) call(ctx context.Context, service string, ep mcp.IMCP, tool string, args map[string]any) (json.RawMessage, error) {
	ctx, span := uc.tracer.Start(ctx, SpanToolCall,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrService, service),
			attribute.String(AttrTool, tool),
		),
	)
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()

	start := time.Now()
	result, err := ep.CallTool(callCtx, tool, args)
	elapsed := time.Since(start)

	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded)
		downstreamErr := &decision.DownstreamError{
			Service:   service,
			Operation: tool,
			Timeout:   timeout,
			Err:       err,
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.metrics.ObserveDownstream(service, tool, outcomeOf(downstreamErr), elapsed)
		uc.l.Warnf(ctx, "%s: %s.%s after %s: %v", LogPrefixCall, service, tool, elapsed, err)
		return nil, downstreamErr
	}

	uc.metrics.ObserveDownstream(service, tool, metrics.OutcomeSuccess, elapsed)
	uc.l.Debugf(ctx, "%s: %s.%s ok in %s", LogPrefixCall, service, tool, elapsed)
	return result, nil
}

// dateArgs builds the signal arguments, preferring the caller supplied date.
func dateArgs(data map[string]any, today string) map[string]any {
	return map[string]any{decision.DataKeyDate: decision.RequestedDate(data, today)}
}

func outcomeOf(err error) string {
	if de, ok := decision.AsDownstreamError(err); ok && de.Timeout {
		return metrics.OutcomeTimeout
	}
	return metrics.OutcomeError
}
