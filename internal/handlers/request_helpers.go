package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clothingstore/internal/models"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func respondValidationErrors(c *gin.Context, route string, errs models.ValidationErrors) {
	log.Printf("[%s] returning 422: %s", route, errs.Error())
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": errs,
	})
}

// truncateError keeps storage failure details out of responses beyond a short
// prefix.
func truncateError(err error) string {
	message := err.Error()
	if len(message) > 120 {
		return message[:120] + "..."
	}
	return message
}
