package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"decision-router/internal/decision"
)

var errDataNotObject = errors.New("data must be a JSON object")

// --- Request DTOs ---

type decideReq struct {
	UserInput *string         `json:"user_input" example:"I slept 6 hours"`
	Data      json.RawMessage `json:"data" swaggertype:"object"`

	data map[string]any
}

// decodeData parses data keeping numbers as json.Number, so integers beyond
// 2^53 are forwarded unchanged.
func (r *decideReq) decodeData() error {
	raw := bytes.TrimSpace(r.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&r.data); err != nil {
		return errDataNotObject
	}
	return nil
}

func (r *decideReq) validate() error {
	if r.UserInput == nil {
		return decision.ErrMissingUserInput
	}
	if err := r.decodeData(); err != nil {
		return err
	}
	return decision.ValidateData(r.data)
}

func (r decideReq) toInput() decision.DecideInput {
	return decision.DecideInput{
		UserInput: *r.UserInput,
		Data:      r.data,
	}
}

// --- Response DTOs ---

// routedResp is returned when a single service handled the request.
type routedResp struct {
	HandledBy string          `json:"handled_by" example:"health_mcp"`
	Signal    json.RawMessage `json:"signal" swaggertype:"object"`
}

// summaryResp aggregates all three services.
type summaryResp struct {
	Date          string          `json:"date" example:"2025-03-14"`
	Health        json.RawMessage `json:"health" swaggertype:"object"`
	Productivity  json.RawMessage `json:"productivity" swaggertype:"object"`
	Cognitive     json.RawMessage `json:"cognitive" swaggertype:"object"`
	FinalDecision string          `json:"final_decision" example:"Aggregated by Decision MCP"`
}

// unrecognizedResp is returned when no domain keyword matched.
type unrecognizedResp struct {
	Error string `json:"error" example:"Intent not recognized"`
	Hint  string `json:"hint" example:"Provide health, productivity, cognitive data, or ask for summary"`
}

// newDecideResp picks the DTO matching the flow that ran.
func (h *handler) newDecideResp(out decision.DecideOutput) any {
	switch {
	case out.Routed != nil:
		return routedResp{HandledBy: out.Routed.HandledBy, Signal: out.Routed.Signal}
	case out.Summary != nil:
		return summaryResp{
			Date:          out.Summary.Date,
			Health:        out.Summary.Health,
			Productivity:  out.Summary.Productivity,
			Cognitive:     out.Summary.Cognitive,
			FinalDecision: out.Summary.FinalDecision,
		}
	case out.Unrecognized != nil:
		return unrecognizedResp{Error: out.Unrecognized.Error, Hint: out.Unrecognized.Hint}
	default:
		return nil
	}
}
