package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"clothingstore/internal/database"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Clothing Store Backend Running"})
	}
}

// TestDatabase reports store connectivity without failing the request, so a
// degraded deployment can still be inspected.
func TestDatabase(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /test"
		defer handlePanic(c, route)

		response := gin.H{
			"backend":           "running",
			"database":          "not available",
			"database_url":      "not set",
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if os.Getenv("MONGO_URI") != "" {
			response["database_url"] = "set"
		}

		if !store.Available() {
			c.JSON(http.StatusOK, response)
			return
		}

		if err := store.Ping(c.Request.Context()); err != nil {
			log.Printf("[%s] ping failed: %v", route, err)
			response["database"] = "error: " + truncateError(err)
			c.JSON(http.StatusOK, response)
			return
		}

		response["database"] = "available"
		response["database_name"] = store.Name()
		response["connection_status"] = "Connected"

		names, err := store.CollectionNames(c.Request.Context())
		if err != nil {
			log.Printf("[%s] list collections failed: %v", route, err)
		} else {
			response["collections"] = names
		}

		c.JSON(http.StatusOK, response)
	}
}
