package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clothingstore/internal/database"
)

// SeedData bootstraps sample content into empty collections. Repeated calls
// insert nothing once each collection holds data.
func SeedData(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/seed"
		defer handlePanic(c, route)

		result, err := store.SeedIfEmpty(c.Request.Context())
		if errors.Is(err, database.ErrUnavailable) {
			respondWithError(c, http.StatusInternalServerError, route, "database not available")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, truncateError(err))
			return
		}

		log.Printf("[%s] seeded products=%d banners=%d", route, result.Products, result.Banners)
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"products": result.Products,
			"banners":  result.Banners,
		})
	}
}
