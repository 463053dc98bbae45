package http

import (
	"errors"
	"net/http"

	"decision-router/internal/decision"
	pkgErrors "decision-router/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, decision.ErrMissingUserInput),
		errors.Is(err, decision.ErrInvalidDate),
		errors.Is(err, errDataNotObject):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if de, ok := decision.AsDownstreamError(err); ok {
		if de.Timeout {
			return pkgErrors.NewHTTPErrorf(http.StatusGatewayTimeout, "%s service timed out", de.Service)
		}
		return pkgErrors.NewHTTPErrorf(http.StatusBadGateway, "%s service failed: %s", de.Service, de.Operation)
	}

	return pkgErrors.ErrInternalServer
}
