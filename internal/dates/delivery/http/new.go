package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
	"nl-dates/pkg/log"
)

// Handler is the public interface for the dates HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Extract(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       dates.UseCase
	calendar *datemath.Calendar
	now      func() time.Time
}

// New creates a new HTTP handler for the dates domain.
// calendar fills in reference_date when a request omits it.
func New(l log.Logger, uc dates.UseCase, calendar *datemath.Calendar) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		calendar: calendar,
		now:      time.Now,
	}
}
