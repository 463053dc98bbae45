package decision

import (
	"fmt"

	"decision-router/pkg/datemath"
)

// ValidateData checks the fields the router itself reads. Everything else is
// owned by the downstream services and passed through as is. A null or empty
// date counts as absent.
func ValidateData(data map[string]any) error {
	raw, ok := data[DataKeyDate]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidDate, raw)
	}
	if s == "" {
		return nil
	}
	if _, err := datemath.ParseISODate(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return nil
}

// RequestedDate returns data.date, or fallback when it is absent, null or empty.
func RequestedDate(data map[string]any, fallback string) string {
	if d, ok := data[DataKeyDate].(string); ok && d != "" {
		return d
	}
	return fallback
}
