package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"clothingstore/internal/database"
	"clothingstore/internal/models"
)

func GetBanners(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/banners"
		defer handlePanic(c, route)

		docs, err := store.Find(c.Request.Context(), database.CollectionBanners, bson.M{}, 0)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, truncateError(err))
			return
		}

		banners := serializeBanners(docs)
		log.Printf("[%s] returning %d banners", route, len(banners))
		c.JSON(http.StatusOK, banners)
	}
}

func CreateBanner(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/banners"
		defer handlePanic(c, route)

		var input models.BannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondValidationErrors(c, route, models.ValidationErrors{
				{Field: "body", Message: "invalid JSON payload"},
			})
			return
		}

		if errs := input.Validate(); errs != nil {
			respondValidationErrors(c, route, errs)
			return
		}

		id, err := store.InsertOne(c.Request.Context(), database.CollectionBanners, input.Document())
		if errors.Is(err, database.ErrUnavailable) {
			respondWithError(c, http.StatusInternalServerError, route, "database not available")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, truncateError(err))
			return
		}

		log.Printf("[%s] created banner %s", route, id.Hex())
		c.JSON(http.StatusCreated, id.Hex())
	}
}
