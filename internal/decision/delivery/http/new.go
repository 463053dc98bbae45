package http

import (
	"decision-router/internal/decision"
	"decision-router/pkg/log"
)

type handler struct {
	l  log.Logger
	uc decision.UseCase
}

// New creates a new HTTP handler for the decision domain.
func New(l log.Logger, uc decision.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
