package decision

import (
	"encoding/json"

	"decision-router/internal/router"
)

// --- UseCase Inputs ---

// DecideInput is a single user request. Data may be nil.
type DecideInput struct {
	UserInput string
	Data      map[string]any
}

// --- UseCase Outputs ---

// RoutedResult is returned when one service handled the request.
type RoutedResult struct {
	HandledBy string          `json:"handled_by"`
	Signal    json.RawMessage `json:"signal"`
}

// SummaryResult aggregates the three services for today.
type SummaryResult struct {
	Date          string          `json:"date"`
	Health        json.RawMessage `json:"health"`
	Productivity  json.RawMessage `json:"productivity"`
	Cognitive     json.RawMessage `json:"cognitive"`
	FinalDecision string          `json:"final_decision"`
}

// UnrecognizedResult is returned when no keyword matched.
type UnrecognizedResult struct {
	Error string `json:"error"`
	Hint  string `json:"hint"`
}

// DecideOutput holds exactly one of Routed, Summary or Unrecognized.
type DecideOutput struct {
	Domain       router.Domain
	Routed       *RoutedResult
	Summary      *SummaryResult
	Unrecognized *UnrecognizedResult
}

// Body returns the result object to serialize.
func (o DecideOutput) Body() any {
	switch {
	case o.Routed != nil:
		return o.Routed
	case o.Summary != nil:
		return o.Summary
	case o.Unrecognized != nil:
		return o.Unrecognized
	default:
		return nil
	}
}
