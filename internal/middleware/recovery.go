package middleware

import (
	"net/http"

	"github.com/foodgram/backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("path", c.Request.URL.Path).
					Interface("error", err).
					Msg("Panic recovered")

				response.Abort(c, http.StatusInternalServerError, response.CodeInternal, "internal server error")
			}
		}()

		c.Next()
	}
}
