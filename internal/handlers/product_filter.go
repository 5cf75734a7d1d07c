package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"clothingstore/internal/models"
)

const (
	defaultProductLimit = 24
	maxProductLimit     = 100
)

// productQuery carries the parsed list parameters. The boolean flags are
// tri-state: nil means "do not constrain on this field".
type productQuery struct {
	Category string
	Season   string
	Trending *bool
	New      *bool
	Best     *bool
	Sale     *bool
	Q        string
	Limit    int64
}

// parseProductQuery validates the raw query parameters before anything
// touches storage. Empty-string text parameters are treated as unset.
func parseProductQuery(c *gin.Context) (productQuery, models.ValidationErrors) {
	query := productQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Season:   strings.TrimSpace(c.Query("season")),
		Q:        strings.TrimSpace(c.Query("q")),
		Limit:    defaultProductLimit,
	}

	var errs models.ValidationErrors

	boolParams := []struct {
		name   string
		target **bool
	}{
		{"trending", &query.Trending},
		{"new", &query.New},
		{"best", &query.Best},
		{"sale", &query.Sale},
	}
	for _, param := range boolParams {
		raw := strings.TrimSpace(c.Query(param.name))
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, models.FieldError{Field: param.name, Message: "must be a boolean"})
			continue
		}
		*param.target = &parsed
	}

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > maxProductLimit {
			errs = append(errs, models.FieldError{Field: "limit", Message: "must be an integer between 1 and 100"})
		} else {
			query.Limit = parsed
		}
	}

	if len(errs) > 0 {
		return productQuery{}, errs
	}
	return query, nil
}

// buildProductFilter conjoins one condition per set parameter. There is no OR
// or nested grouping; q becomes a case-insensitive substring match on title.
func buildProductFilter(query productQuery) bson.M {
	filter := bson.M{}

	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Season != "" {
		filter["season"] = query.Season
	}
	if query.Trending != nil {
		filter["is_trending"] = *query.Trending
	}
	if query.New != nil {
		filter["is_new"] = *query.New
	}
	if query.Best != nil {
		filter["is_best_seller"] = *query.Best
	}
	if query.Sale != nil {
		filter["on_sale"] = *query.Sale
	}
	if query.Q != "" {
		filter["title"] = bson.M{"$regex": query.Q, "$options": "i"}
	}

	return filter
}
