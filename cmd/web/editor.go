package main

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"bloggergen.org/cardgen-web/internal/describe"
	"bloggergen.org/cardgen-web/internal/export"
	"bloggergen.org/cardgen-web/internal/preview"
	"bloggergen.org/cardgen-web/internal/product"
	"bloggergen.org/cardgen-web/internal/widget"
)

type BadgeOption struct {
	Value  string
	Label  string
	Active bool
}

type RatingOption struct {
	Value  int
	Active bool
}

type EditorView struct {
	Lang       string
	Product    product.Data
	State      widget.State
	Badges     []BadgeOption
	Ratings    []RatingOption
	AIKeywords string
	AIStatus   describe.Status
	AILabel    string
	WidgetHTML template.HTML
	Code       string
	ExportHref string
	Uploads    bool
}

// buildEditorView binds the posted editor form, applies any list-management
// action, and derives the preview plus embed code. A nil form yields the
// seeded sample product.
func buildEditorView(lang string, form url.Values) EditorView {
	var d product.Data
	if form == nil {
		d = product.Default()
	} else {
		d = product.FromForm(form)
	}
	d = applyListAction(d, form)

	// restore the widget state against the possibly changed lists
	s := widget.FromForm(d, form)

	v := EditorView{
		Lang:       lang,
		Product:    d,
		State:      s,
		Badges:     badgeOptions(lang, d.Badge),
		Ratings:    ratingOptions(d.Rating),
		AIStatus:   aiTracker.Status(),
		WidgetHTML: preview.Widget(d, s),
		Code:       export.Render(d),
		ExportHref: "/export?" + d.Values().Encode(),
		Uploads:    imageStore != nil,
	}
	if form != nil {
		v.AIKeywords = strings.TrimSpace(form.Get("ai_keywords"))
	}
	v.AILabel = aiStatusLabel(lang, v.AIStatus)
	return v
}

func applyListAction(d product.Data, form url.Values) product.Data {
	if form == nil {
		return d
	}
	switch form.Get("action") {
	case "add_image":
		d.Images = appendUnique(d.Images, strings.TrimSpace(form.Get("new_image")))
	case "remove_image":
		d.Images = removeAt(d.Images, form.Get("value"))
	case "add_color":
		d.Colors = appendUnique(d.Colors, strings.TrimSpace(form.Get("new_color")))
	case "remove_color":
		d.Colors = removeAt(d.Colors, form.Get("value"))
	}
	return d
}

func badgeOptions(lang string, active product.Badge) []BadgeOption {
	all := []product.Badge{
		product.BadgeNone,
		product.BadgeHot,
		product.BadgeBlackFriday,
		product.BadgeComingSoon,
		product.BadgePreOrder,
		product.BadgeSoldOut,
	}
	out := make([]BadgeOption, 0, len(all))
	for _, b := range all {
		out = append(out, BadgeOption{
			Value:  string(b),
			Label:  bundle.T(lang, "badge."+string(b)),
			Active: b == active,
		})
	}
	return out
}

func ratingOptions(active int) []RatingOption {
	out := make([]RatingOption, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, RatingOption{Value: i, Active: i == active})
	}
	return out
}

func aiStatusLabel(lang string, st describe.Status) string {
	switch st {
	case describe.StatusLoading:
		return bundle.T(lang, "editor.ai.loading")
	case describe.StatusSuccess:
		return bundle.T(lang, "editor.ai.success")
	case describe.StatusError:
		return bundle.T(lang, "editor.ai.error")
	default:
		return ""
	}
}

func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func removeAt(list []string, rawIndex string) []string {
	i, err := strconv.Atoi(rawIndex)
	if err != nil || i < 0 || i >= len(list) {
		return list
	}
	return append(list[:i], list[i+1:]...)
}
