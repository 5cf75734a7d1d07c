package models

import "go.mongodb.org/mongo-driver/bson"

// BannerInput is the write shape for POST /api/banners. Slug uniqueness is
// enforced by a storage index, not here.
type BannerInput struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" validate:"omitempty,url"`
	Slug     string `json:"slug" validate:"required"`
}

func (b BannerInput) Validate() ValidationErrors {
	return checkStruct(b)
}

func (b BannerInput) Document() bson.M {
	doc := bson.M{
		"title": b.Title,
		"slug":  b.Slug,
	}
	if b.Subtitle != "" {
		doc["subtitle"] = b.Subtitle
	}
	if b.Image != "" {
		doc["image"] = b.Image
	}
	return doc
}

type BannerOut struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	Slug     string  `json:"slug"`
}
