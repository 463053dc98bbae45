package mcp

import (
	"context"
	"fmt"

	"decision-router/internal/decision"
)

func (t *decideTool) Name() string {
	return ToolName
}

func (t *decideTool) Description() string {
	return "The only tool a user calls. Routes user_input to the health, productivity or cognitive service, " +
		"or aggregates all three when asked for a summary. Optional data is forwarded to the matched service; " +
		"data.date (YYYY-MM-DD) selects the day to evaluate, today when absent or empty."
}

func (t *decideTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"user_input": map[string]any{
				"type":        "string",
				"description": "Free-text request, e.g. \"I slept 6 hours\" or \"give me a summary\"",
			},
			"data": map[string]any{
				"type":        []string{"object", "null"},
				"description": "Auxiliary fields passed to the matched service",
				"properties": map[string]any{
					"date": map[string]any{
						"type":        []string{"string", "null"},
						"description": "Day to evaluate in YYYY-MM-DD format; empty or null means today",
						"pattern":     `^(\d{4}-\d{2}-\d{2})?$`,
					},
				},
				"additionalProperties": true,
			},
		},
		"required":             []string{"user_input"},
		"additionalProperties": false,
	}
}

// Execute runs a decision and returns the result object.
func (t *decideTool) Execute(ctx context.Context, args map[string]any) (any, error) {
	input, err := t.toInput(args)
	if err != nil {
		return nil, err
	}

	output, err := t.uc.Decide(ctx, input)
	if err != nil {
		t.l.Errorf(ctx, "uc.Decide: %v", err)
		return nil, err
	}

	return output.Body(), nil
}

func (t *decideTool) toInput(args map[string]any) (decision.DecideInput, error) {
	userInput, ok := args["user_input"].(string)
	if !ok {
		return decision.DecideInput{}, decision.ErrMissingUserInput
	}

	var data map[string]any
	switch raw := args["data"].(type) {
	case nil:
	case map[string]any:
		data = raw
	default:
		return decision.DecideInput{}, fmt.Errorf("data must be an object, got %T", raw)
	}

	if err := decision.ValidateData(data); err != nil {
		return decision.DecideInput{}, err
	}

	return decision.DecideInput{UserInput: userInput, Data: data}, nil
}
