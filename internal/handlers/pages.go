package handlers

import (
	"bloggergen.org/cardgen-web/internal/nav"
	"bloggergen.org/cardgen-web/internal/seo"
)

// PageData is the shared layout view model.
type PageData struct {
	Title     string
	Lang      string
	Path      string
	Nav       []nav.RenderedItem
	SEO       seo.Meta
	JSONLD    []string
	Analytics Analytics

	// Per-page payload
	Editor any
	Export any
}

// NewPageData fills the layout fields common to every page.
func NewPageData(lang, path, title string) PageData {
	return PageData{
		Title:     title,
		Lang:      lang,
		Path:      path,
		Nav:       nav.Build(path),
		Analytics: LoadAnalyticsFromEnv(),
	}
}
