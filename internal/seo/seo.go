package seo

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}
