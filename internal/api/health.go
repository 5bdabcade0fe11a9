package api

import (
	"context"
	"net/http"
	"time"

	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck reports liveness and database reachability
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		response.ErrorResponse(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
