package http

import (
	"github.com/gin-gonic/gin"

	"nl-dates/pkg/response"
)

// Parse godoc
// @Summary     Resolve a date phrase
// @Description Resolves a natural-language date phrase to a YYYY-MM-DD date relative to reference_date (default: today).
// @Tags        Dates
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Date phrase"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Model returned an invalid date"
// @Failure     502  {object} response.Resp "Language model call failed"
// @Failure     503  {object} response.Resp "Language model not configured"
// @Router      /api/v1/dates/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.CalculateDate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalculateDate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseResp(req, d))
}

// Extract godoc
// @Summary     Extract a date from a task
// @Description Splits a task description into its text without date references and the date it mentions, if any.
// @Tags        Dates
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Task description"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Model returned an invalid date"
// @Failure     502  {object} response.Resp "Language model call failed"
// @Failure     503  {object} response.Resp "Language model not configured"
// @Router      /api/v1/dates/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ExtractDate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractDate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(req, out))
}
