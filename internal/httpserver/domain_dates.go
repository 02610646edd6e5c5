package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	datesHTTP "nl-dates/internal/dates/delivery/http"
)

// setupDatesDomain registers /api/v1/dates/parse and /api/v1/dates/extract.
func (srv HTTPServer) setupDatesDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := datesHTTP.New(srv.l, srv.datesUC, srv.calendar)
	datesHTTP.RegisterRoutes(api.Group("/dates"), h)

	srv.l.Infof(ctx, "Dates domain registered")
	return nil
}
