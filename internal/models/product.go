package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// DefaultSizes is applied when a product is created without a sizes list.
var DefaultSizes = []string{"S", "M", "L", "XL"}

// ProductInput is the write shape for POST /api/products. Pointer fields
// distinguish "omitted" from an explicit zero value so declared defaults only
// apply when the caller left the field out.
type ProductInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Category     string   `json:"category" validate:"required"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
	Sizes        []string `json:"sizes"`
	InStock      *bool    `json:"in_stock"`
	IsTrending   *bool    `json:"is_trending"`
	IsNew        *bool    `json:"is_new"`
	IsBestSeller *bool    `json:"is_best_seller"`
	Season       string   `json:"season"`
	OnSale       *bool    `json:"on_sale"`
	SalePrice    *float64 `json:"sale_price" validate:"omitempty,gte=0"`
}

// Validate gates the input before it may touch storage. The relationship
// between on_sale and sale_price is deliberately not checked; stored data
// from the very first release carries on_sale=true rows without a sale_price.
func (p ProductInput) Validate() ValidationErrors {
	errs := checkStruct(p)
	if strings.TrimSpace(p.Title) == "" && p.Title != "" {
		errs = append(errs, FieldError{Field: "title", Message: "is required"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Document materializes the validated input as a storage record, filling
// every declared default for omitted fields.
func (p ProductInput) Document() bson.M {
	doc := bson.M{
		"title":          p.Title,
		"price":          *p.Price,
		"category":       p.Category,
		"images":         emptyIfNil(p.Images),
		"sizes":          p.Sizes,
		"in_stock":       boolOrDefault(p.InStock, true),
		"is_trending":    boolOrDefault(p.IsTrending, false),
		"is_new":         boolOrDefault(p.IsNew, false),
		"is_best_seller": boolOrDefault(p.IsBestSeller, false),
		"on_sale":        boolOrDefault(p.OnSale, false),
	}
	if p.Sizes == nil {
		doc["sizes"] = append([]string(nil), DefaultSizes...)
	}
	if p.Description != "" {
		doc["description"] = p.Description
	}
	if p.Season != "" {
		doc["season"] = p.Season
	}
	if p.SalePrice != nil {
		doc["sale_price"] = *p.SalePrice
	}
	return doc
}

// ProductOut is the strict, fully-defaulted response shape. Optional fields
// are pointers so absent values render as null rather than a zero value.
type ProductOut struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
	InStock      bool     `json:"in_stock"`
	IsTrending   bool     `json:"is_trending"`
	IsNew        bool     `json:"is_new"`
	IsBestSeller bool     `json:"is_best_seller"`
	Season       *string  `json:"season"`
	OnSale       bool     `json:"on_sale"`
	SalePrice    *float64 `json:"sale_price"`
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
