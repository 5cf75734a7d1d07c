package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
)

type SeedResult struct {
	Products int `json:"products"`
	Banners  int `json:"banners"`
}

// SeedIfEmpty inserts the fixed sample records into each empty collection.
// Collections that already hold at least one document are left untouched, so
// repeated calls are no-ops after the first successful run.
func (s *Store) SeedIfEmpty(ctx context.Context) (SeedResult, error) {
	result := SeedResult{}

	if !s.Available() {
		return result, ErrUnavailable
	}

	bannerCount, err := s.CountAll(ctx, CollectionBanners)
	if err != nil {
		return result, err
	}
	if bannerCount == 0 {
		for _, banner := range seedBanners() {
			if _, err := s.InsertOne(ctx, CollectionBanners, banner); err != nil {
				return result, err
			}
			result.Banners++
		}
		log.Printf("SeedIfEmpty: inserted %d banners", result.Banners)
	}

	productCount, err := s.CountAll(ctx, CollectionProducts)
	if err != nil {
		return result, err
	}
	if productCount == 0 {
		for _, product := range seedProducts() {
			if _, err := s.InsertOne(ctx, CollectionProducts, product); err != nil {
				return result, err
			}
			result.Products++
		}
		log.Printf("SeedIfEmpty: inserted %d products", result.Products)
	}

	return result, nil
}

func seedBanners() []bson.M {
	return []bson.M{
		{
			"title":    "Mega Sale",
			"subtitle": "Up to 60% OFF on top styles",
			"image":    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=1600&q=80&auto=format&fit=crop",
			"slug":     "mega-sale",
		},
		{
			"title":    "New Collection 2025",
			"subtitle": "Fresh arrivals for the new season",
			"image":    "https://images.unsplash.com/photo-1520975922203-b5d0b0d75136?w=1600&q=80&auto=format&fit=crop",
			"slug":     "new-collection-2025",
		},
		{
			"title":    "Limited Stock Available",
			"subtitle": "Grab your favorites before they’re gone",
			"image":    "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?w=1600&q=80&auto=format&fit=crop",
			"slug":     "limited-stock",
		},
	}
}

func seedProducts() []bson.M {
	return []bson.M{
		{
			"title":       "Classic Black Tee",
			"description": "Premium cotton, perfect fit.",
			"price":       2499,
			"category":    "Men",
			"images": []string{
				"https://images.unsplash.com/photo-1520975922203-b5d0b0d75136?w=1200&auto=format&fit=crop&q=80",
			},
			"sizes":          []string{"S", "M", "L", "XL"},
			"in_stock":       true,
			"is_trending":    true,
			"is_new":         false,
			"is_best_seller": true,
			"season":         "Summer",
			"on_sale":        true,
			"sale_price":     1999,
		},
		{
			"title":       "Gold Accent Hoodie",
			"description": "Cozy fleece with subtle gold detail.",
			"price":       4999,
			"category":    "Women",
			"images": []string{
				"https://images.unsplash.com/photo-1519741497674-611481863552?w=1200&auto=format&fit=crop&q=80",
			},
			"sizes":          []string{"S", "M", "L", "XL"},
			"in_stock":       true,
			"is_trending":    true,
			"is_new":         true,
			"is_best_seller": false,
			"season":         "Winter",
			"on_sale":        false,
		},
		{
			"title":       "Kids Summer Set",
			"description": "Light and comfy two-piece.",
			"price":       2999,
			"category":    "Kids",
			"images": []string{
				"https://images.unsplash.com/photo-1520975432204-8d8a9f9a9f3b?w=1200&auto=format&fit=crop&q=80",
			},
			"sizes":          []string{"S", "M", "L"},
			"in_stock":       true,
			"is_trending":    false,
			"is_new":         true,
			"is_best_seller": false,
			"season":         "Summer",
			"on_sale":        false,
		},
	}
}
