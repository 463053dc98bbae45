package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "decision-router/pkg/errors"
)

// processDecideReq binds and validates the decide request body.
func (h *handler) processDecideReq(c *gin.Context) (decideReq, error) {
	var req decideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.decision.delivery.http.processDecideReq: %v", err)
		return req, pkgErrors.NewHTTPError(400, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return req, h.mapError(err)
	}
	return req, nil
}
