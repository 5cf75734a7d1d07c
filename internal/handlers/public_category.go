package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clothingstore/internal/models"
)

// GetCategories serves the fixed storefront label list; it never touches
// storage.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Categories)
	}
}
