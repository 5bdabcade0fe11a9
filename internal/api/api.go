package api

import "github.com/gin-gonic/gin"

// Middlewares are the per-route guards handlers attach when registering
type Middlewares struct {
	// Required rejects anonymous requests
	Required gin.HandlerFunc
	// Optional attaches the principal when a token is sent
	Optional gin.HandlerFunc
	// RecipeCreation throttles recipe publishing
	RecipeCreation gin.HandlerFunc
}
