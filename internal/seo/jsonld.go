package seo

import (
	"encoding/json"

	"bloggergen.org/cardgen-web/internal/product"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Product returns a schema.org Product node for the card being edited, so
// the editor's preview page carries structured data matching the widget.
func Product(d product.Data) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Product",
		"name":     d.Title,
		"image":    d.PrimaryImage(),
	}
	if d.Category != "" {
		m["category"] = d.Category
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	offer := map[string]any{
		"@type": "Offer",
		"price": d.Price,
	}
	if d.InStock {
		offer["availability"] = "https://schema.org/InStock"
	} else {
		offer["availability"] = "https://schema.org/OutOfStock"
	}
	if d.BuyLink != "" && d.BuyLink != "#" {
		offer["url"] = d.BuyLink
	}
	m["offers"] = offer
	if d.ShowStars && d.Rating > 0 {
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": d.Rating,
			"reviewCount": 1,
		}
	}
	return m
}
