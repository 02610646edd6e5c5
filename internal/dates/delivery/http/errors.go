package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nl-dates/internal/dates"
	pkgErrors "nl-dates/pkg/errors"
	"nl-dates/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// It returns nil for errors the domain does not know about.
func (h *handler) mapError(err error) error {
	var (
		parseErr   *dates.DateParseError
		adapterErr *dates.AdapterError
		configErr  *dates.ConfigurationError
	)

	switch {
	case errors.As(err, &parseErr):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, parseErr.Error())
	case errors.As(err, &adapterErr):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, adapterErr.Error())
	case errors.As(err, &configErr):
		return pkgErrors.ErrServiceUnavailable
	default:
		return nil
	}
}

// respondError writes the mapped error, or a generic 500 that hides err.
func (h *handler) respondError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
