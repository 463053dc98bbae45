package http

import (
	"github.com/gin-gonic/gin"

	"decision-router/pkg/response"
)

// Decide godoc
// @Summary     Route a user request
// @Description Classifies user_input into health, productivity, cognitive or summary and returns the matching service's signal.
// @Description Unrecognized input returns an error/hint object with status 200.
// @Tags        Decision
// @Accept      json
// @Produce     json
// @Param       body body decideReq true "User request"
// @Success     200  {object} response.Resp{data=object} "One of: routedResp (handled_by, signal), summaryResp (date, health, productivity, cognitive, final_decision) or unrecognizedResp (error, hint)"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Downstream service failed"
// @Failure     504  {object} response.Resp "Downstream service timed out"
// @Router      /api/v1/decide [POST]
func (h *handler) Decide(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecideReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Decide(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Decide: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDecideResp(output))
}
