package models

import (
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func hasFieldError(errs ValidationErrors, field string) bool {
	for _, fe := range errs {
		if fe.Field == field || strings.HasPrefix(fe.Field, field+"[") {
			return true
		}
	}
	return false
}

func TestProductValidateRequiredFields(t *testing.T) {
	errs := ProductInput{}.Validate()
	if errs == nil {
		t.Fatal("expected validation errors for empty input")
	}
	for _, field := range []string{"title", "price", "category"} {
		if !hasFieldError(errs, field) {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestProductValidateNegativePrice(t *testing.T) {
	errs := ProductInput{
		Title:    "Tee",
		Price:    floatPtr(-1),
		Category: "Men",
	}.Validate()
	if !hasFieldError(errs, "price") {
		t.Fatalf("expected price error, got %v", errs)
	}
}

func TestProductValidateNegativeSalePrice(t *testing.T) {
	errs := ProductInput{
		Title:     "Tee",
		Price:     floatPtr(1000),
		Category:  "Men",
		SalePrice: floatPtr(-5),
	}.Validate()
	if !hasFieldError(errs, "sale_price") {
		t.Fatalf("expected sale_price error, got %v", errs)
	}
}

func TestProductValidateMalformedImageURL(t *testing.T) {
	errs := ProductInput{
		Title:    "Tee",
		Price:    floatPtr(1000),
		Category: "Men",
		Images:   []string{"not-a-url"},
	}.Validate()
	if !hasFieldError(errs, "images") {
		t.Fatalf("expected images error, got %v", errs)
	}
}

func TestProductValidateAcceptsZeroPrice(t *testing.T) {
	errs := ProductInput{
		Title:    "Freebie",
		Price:    floatPtr(0),
		Category: "Sale Items",
	}.Validate()
	if errs != nil {
		t.Fatalf("expected zero price to be valid, got %v", errs)
	}
}

func TestProductValidateDoesNotTieSalePriceToOnSale(t *testing.T) {
	// permissive on purpose: on_sale=true without sale_price is accepted
	errs := ProductInput{
		Title:    "Tee",
		Price:    floatPtr(1000),
		Category: "Men",
		OnSale:   boolPtr(true),
	}.Validate()
	if errs != nil {
		t.Fatalf("expected permissive sale handling, got %v", errs)
	}
}

func TestProductDocumentFillsDefaults(t *testing.T) {
	doc := ProductInput{
		Title:    "Tee",
		Price:    floatPtr(1000),
		Category: "Men",
	}.Document()

	sizes, ok := doc["sizes"].([]string)
	if !ok || len(sizes) != 4 {
		t.Fatalf("expected default sizes, got %v", doc["sizes"])
	}
	for i, want := range []string{"S", "M", "L", "XL"} {
		if sizes[i] != want {
			t.Fatalf("expected size %s at %d, got %s", want, i, sizes[i])
		}
	}
	if doc["in_stock"] != true {
		t.Fatalf("expected in_stock default true, got %v", doc["in_stock"])
	}
	for _, key := range []string{"is_trending", "is_new", "is_best_seller", "on_sale"} {
		if doc[key] != false {
			t.Fatalf("expected %s default false, got %v", key, doc[key])
		}
	}
	if _, present := doc["sale_price"]; present {
		t.Fatal("expected omitted sale_price to stay absent")
	}
	if images, ok := doc["images"].([]string); !ok || len(images) != 0 {
		t.Fatalf("expected empty images slice, got %v", doc["images"])
	}
}

func TestProductDocumentKeepsExplicitValues(t *testing.T) {
	doc := ProductInput{
		Title:        "Hoodie",
		Description:  "Warm",
		Price:        floatPtr(4999),
		Category:     "Women",
		Sizes:        []string{"M"},
		InStock:      boolPtr(false),
		IsTrending:   boolPtr(true),
		IsNew:        boolPtr(true),
		IsBestSeller: boolPtr(true),
		Season:       "Winter",
		OnSale:       boolPtr(true),
		SalePrice:    floatPtr(3999),
	}.Document()

	if doc["in_stock"] != false || doc["is_trending"] != true {
		t.Fatalf("expected explicit booleans preserved, got %v", doc)
	}
	if doc["sale_price"] != 3999.0 {
		t.Fatalf("expected sale_price 3999, got %v", doc["sale_price"])
	}
	if doc["season"] != "Winter" || doc["description"] != "Warm" {
		t.Fatalf("expected optional text fields stored, got %v", doc)
	}
	if sizes, ok := doc["sizes"].([]string); !ok || len(sizes) != 1 || sizes[0] != "M" {
		t.Fatalf("expected explicit sizes preserved, got %v", doc["sizes"])
	}
}

func TestProductDocumentEmptySizesListIsNotDefaulted(t *testing.T) {
	doc := ProductInput{
		Title:    "Tee",
		Price:    floatPtr(1000),
		Category: "Men",
		Sizes:    []string{},
	}.Document()

	if sizes, ok := doc["sizes"].([]string); !ok || len(sizes) != 0 {
		t.Fatalf("expected explicit empty sizes kept, got %v", doc["sizes"])
	}
}
