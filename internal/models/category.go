package models

// Categories is the advisory storefront label set, in display order. Products
// may carry any free-text category; this list only feeds the categories
// endpoint and the storefront filter chips.
var Categories = []string{
	"Men",
	"Women",
	"Kids",
	"Winter Collection",
	"Summer Collection",
	"Sale Items",
}
