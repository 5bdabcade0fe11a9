package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/foodgram/backend/internal/response"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/types"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// pathID parses the :id parameter. A malformed id answers 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.ErrorResponse(c, http.StatusNotFound, response.CodeNotFound, "not found")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into req and answers 400 on malformed JSON
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: "+err.Error()))
		return false
	}
	return true
}

func pagination(c *gin.Context) types.Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return types.NewPagination(page, limit)
}

// queryUints collects a repeatable integer parameter (?author=1&author=2 or
// ?author=1,2). Invalid values are ignored.
func queryUints(c *gin.Context, key string) []uint {
	var out []uint
	for _, raw := range queryList(c, key) {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			out = append(out, uint(v))
		}
	}
	return out
}

func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func queryBool(c *gin.Context, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
