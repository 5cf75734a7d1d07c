package handlers

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clothingstore/internal/models"
)

// serializeProduct maps a raw stored document to the response shape. It must
// be total over anything storage hands back: legacy documents may miss any
// optional field, and numbers arrive as int32, int64 or float64 depending on
// how they were written.
func serializeProduct(raw bson.M) models.ProductOut {
	return models.ProductOut{
		ID:           idString(raw["_id"]),
		Title:        stringField(raw, "title"),
		Description:  optionalStringField(raw, "description"),
		Price:        floatField(raw, "price"),
		Category:     stringField(raw, "category"),
		Images:       stringListField(raw, "images"),
		Sizes:        stringListField(raw, "sizes"),
		InStock:      boolField(raw, "in_stock", true),
		IsTrending:   boolField(raw, "is_trending", false),
		IsNew:        boolField(raw, "is_new", false),
		IsBestSeller: boolField(raw, "is_best_seller", false),
		Season:       optionalStringField(raw, "season"),
		OnSale:       boolField(raw, "on_sale", false),
		SalePrice:    optionalFloatField(raw, "sale_price"),
	}
}

func serializeBanner(raw bson.M) models.BannerOut {
	return models.BannerOut{
		ID:       idString(raw["_id"]),
		Title:    stringField(raw, "title"),
		Subtitle: optionalStringField(raw, "subtitle"),
		Image:    optionalStringField(raw, "image"),
		Slug:     stringField(raw, "slug"),
	}
}

func serializeProducts(docs []bson.M) []models.ProductOut {
	out := make([]models.ProductOut, 0, len(docs))
	for _, doc := range docs {
		out = append(out, serializeProduct(doc))
	}
	return out
}

func serializeBanners(docs []bson.M) []models.BannerOut {
	out := make([]models.BannerOut, 0, len(docs))
	for _, doc := range docs {
		out = append(out, serializeBanner(doc))
	}
	return out
}

func idString(value interface{}) string {
	switch typed := value.(type) {
	case primitive.ObjectID:
		return typed.Hex()
	case string:
		return typed
	case nil:
		return ""
	default:
		return fmt.Sprint(typed)
	}
}

func stringField(raw bson.M, key string) string {
	if value, ok := raw[key].(string); ok {
		return value
	}
	return ""
}

func optionalStringField(raw bson.M, key string) *string {
	if value, ok := raw[key].(string); ok {
		return &value
	}
	return nil
}

func coerceFloat(value interface{}) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case int:
		return float64(typed), true
	default:
		return 0, false
	}
}

func floatField(raw bson.M, key string) float64 {
	if value, ok := coerceFloat(raw[key]); ok {
		return value
	}
	return 0
}

func optionalFloatField(raw bson.M, key string) *float64 {
	if value, ok := coerceFloat(raw[key]); ok {
		return &value
	}
	return nil
}

func boolField(raw bson.M, key string, fallback bool) bool {
	if value, ok := raw[key].(bool); ok {
		return value
	}
	return fallback
}

func stringListField(raw bson.M, key string) []string {
	out := make([]string, 0)
	switch typed := raw[key].(type) {
	case []string:
		out = append(out, typed...)
	case primitive.A:
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
	case []interface{}:
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
	}
	return out
}
