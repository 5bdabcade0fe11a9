package api

import (
	"errors"
	"net/http"

	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors to HTTP status codes. Unknown errors are
// logged and reported as a bare 500.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		if len(verr.Fields) > 0 {
			response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, verr.Error(), verr.Fields)
			return
		}
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeValidation, verr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusBadRequest, response.CodeBadRequest, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		response.ErrorResponse(c, http.StatusUnauthorized, response.CodeUnauthorized, service.ErrUnauthenticated.Error())
	case errors.Is(err, service.ErrForbidden):
		response.ErrorResponse(c, http.StatusForbidden, response.CodeForbidden, service.ErrForbidden.Error())
	case errors.Is(err, service.ErrNotFound):
		response.ErrorResponse(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.ErrorResponse(c, http.StatusConflict, response.CodeConflict, err.Error())
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		response.ErrorResponse(c, http.StatusInternalServerError, response.CodeInternal, "internal server error")
	}
}
