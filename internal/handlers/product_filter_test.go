package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func queryContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParseProductQueryDefaults(t *testing.T) {
	query, errs := parseProductQuery(queryContext(t, "/api/products"))
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if query.Limit != 24 {
		t.Fatalf("expected default limit 24, got %d", query.Limit)
	}
	if query.Trending != nil || query.New != nil || query.Best != nil || query.Sale != nil {
		t.Fatalf("expected unset boolean params, got %+v", query)
	}
}

func TestParseProductQueryLimitBounds(t *testing.T) {
	for _, target := range []string{
		"/api/products?limit=0",
		"/api/products?limit=101",
		"/api/products?limit=-3",
		"/api/products?limit=abc",
	} {
		if _, errs := parseProductQuery(queryContext(t, target)); errs == nil {
			t.Fatalf("expected limit rejection for %s", target)
		}
	}

	for _, target := range []string{"/api/products?limit=1", "/api/products?limit=100"} {
		if _, errs := parseProductQuery(queryContext(t, target)); errs != nil {
			t.Fatalf("expected %s accepted, got %v", target, errs)
		}
	}
}

func TestParseProductQueryInvalidBool(t *testing.T) {
	_, errs := parseProductQuery(queryContext(t, "/api/products?trending=maybe"))
	if errs == nil {
		t.Fatal("expected rejection of non-boolean trending")
	}
}

func TestParseProductQueryEmptyStringsTreatedAsUnset(t *testing.T) {
	query, errs := parseProductQuery(queryContext(t, "/api/products?category=&season=&q="))
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	filter := buildProductFilter(query)
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestBuildProductFilterEmpty(t *testing.T) {
	filter := buildProductFilter(productQuery{Limit: 24})
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestBuildProductFilterConjoinsAllParams(t *testing.T) {
	query, errs := parseProductQuery(queryContext(t,
		"/api/products?category=Men&season=Winter&trending=true&new=false&best=true&sale=false&q=tee"))
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}

	filter := buildProductFilter(query)
	if len(filter) != 7 {
		t.Fatalf("expected 7 conditions, got %d: %v", len(filter), filter)
	}
	if filter["category"] != "Men" || filter["season"] != "Winter" {
		t.Fatalf("unexpected equality conditions: %v", filter)
	}
	if filter["is_trending"] != true || filter["is_new"] != false {
		t.Fatalf("unexpected tri-state mapping: %v", filter)
	}
	if filter["is_best_seller"] != true || filter["on_sale"] != false {
		t.Fatalf("unexpected tri-state mapping: %v", filter)
	}

	regex, ok := filter["title"].(bson.M)
	if !ok || regex["$regex"] != "tee" || regex["$options"] != "i" {
		t.Fatalf("expected case-insensitive substring on title, got %v", filter["title"])
	}
}

func TestBuildProductFilterFalseIsAConstraint(t *testing.T) {
	query, _ := parseProductQuery(queryContext(t, "/api/products?sale=false"))
	filter := buildProductFilter(query)
	if filter["on_sale"] != false {
		t.Fatalf("expected sale=false to constrain on_sale, got %v", filter)
	}
	if len(filter) != 1 {
		t.Fatalf("expected a single condition, got %v", filter)
	}
}
