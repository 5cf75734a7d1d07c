package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"clothingstore/internal/database"
	"clothingstore/internal/models"
)

func GetProducts(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit category=%s season=%s q=%s limit=%s",
			route,
			c.Query("category"),
			c.Query("season"),
			c.Query("q"),
			c.Query("limit"),
		)

		query, errs := parseProductQuery(c)
		if errs != nil {
			respondValidationErrors(c, route, errs)
			return
		}

		docs, err := store.Find(c.Request.Context(), database.CollectionProducts, buildProductFilter(query), query.Limit)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, truncateError(err))
			return
		}

		products := serializeProducts(docs)
		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		raw, err := store.FindOne(c.Request.Context(), database.CollectionProducts, id)
		if errors.Is(err, database.ErrUnavailable) {
			respondWithError(c, http.StatusInternalServerError, route, "database not available")
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, truncateError(err))
			return
		}

		c.JSON(http.StatusOK, serializeProduct(raw))
	}
}

func CreateProduct(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var input models.ProductInput
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

		id, err := store.InsertOne(c.Request.Context(), database.CollectionProducts, input.Document())
		if errors.Is(err, database.ErrUnavailable) {
			respondWithError(c, http.StatusInternalServerError, route, "database not available")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, truncateError(err))
			return
		}

		log.Printf("[%s] created product %s", route, id.Hex())
		c.JSON(http.StatusCreated, id.Hex())
	}
}
