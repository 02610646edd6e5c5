package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"nl-dates/pkg/datemath"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ReferenceDate = h.resolveReference(req.ReferenceDate)
	return req, req.validate()
}

// processExtractReq binds and validates the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ReferenceDate = h.resolveReference(req.ReferenceDate)
	return req, req.validate()
}

// resolveReference pins an omitted reference date to today so the response
// can echo the date the phrase was resolved against.
func (h *handler) resolveReference(ref *datemath.Date) *datemath.Date {
	if ref != nil {
		return ref
	}
	today := h.calendar.Today(h.now())
	return &today
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
