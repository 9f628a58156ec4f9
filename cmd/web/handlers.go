package main

import (
	"net/http"
	"net/url"
	"strings"

	"bloggergen.org/cardgen-web/internal/export"
	"bloggergen.org/cardgen-web/internal/handlers"
	mw "bloggergen.org/cardgen-web/internal/middleware"
	"bloggergen.org/cardgen-web/internal/preview"
	"bloggergen.org/cardgen-web/internal/product"
	"bloggergen.org/cardgen-web/internal/seo"
	"bloggergen.org/cardgen-web/internal/widget"
)

// ExportPageView backs the standalone embed-code page.
type ExportPageView struct {
	Code         string
	DownloadHref string
}

// EditorPageHandler serves the editor. Query parameters, when present, seed
// the product so edited cards survive a reload or a shared link.
func EditorPageHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	var form url.Values
	if len(r.URL.Query()) > 0 {
		form = r.URL.Query()
	}
	v := buildEditorView(lang, form)

	pd := handlers.NewPageData(lang, r.URL.Path, bundle.T(lang, "editor.title"))
	pd.SEO = seo.Meta{
		Title:       pd.Title,
		Description: bundle.T(lang, "editor.tagline"),
		OG: seo.OpenGraph{
			Title:       pd.Title,
			Description: bundle.T(lang, "editor.tagline"),
			Image:       v.Product.PrimaryImage(),
			Type:        "website",
		},
	}
	pd.JSONLD = []string{seo.JSON(seo.Product(v.Product))}
	pd.Editor = v
	renderPage(w, r, "editor_page", pd)
}

// EditorFrag re-renders the editor body after any form change or list action.
func EditorFrag(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	lang := mw.Lang(r)
	v := buildEditorView(lang, r.Form)
	// keep the address bar shareable
	w.Header().Set("HX-Push-Url", "/?"+v.Product.Values().Encode())
	renderEditorBody(w, r, v)
}

// WidgetFrag applies one widget interaction and re-renders the live preview.
func WidgetFrag(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	d := product.FromForm(r.Form)
	s := widget.FromForm(d, r.Form)
	ev := widget.Event{Name: r.Form.Get("action"), Value: r.Form.Get("value")}
	next, eff := widget.Apply(d, s, ev)
	effectTrigger(w, eff)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(preview.Widget(d, next)))
}

// DescribeFrag runs the AI draft and re-renders the editor with the new
// description filled in.
func DescribeFrag(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	lang := mw.Lang(r)
	title := strings.TrimSpace(r.Form.Get("title"))
	category := strings.TrimSpace(r.Form.Get("category"))
	if title == "" || category == "" {
		alertTrigger(w, bundle.T(lang, "editor.ai.missing"))
		renderEditorBody(w, r, buildEditorView(lang, r.Form))
		return
	}

	aiTracker.Begin()
	res, err := generator.Generate(r.Context(), title, category, r.Form.Get("ai_keywords"))
	aiTracker.Finish(err)
	if err != nil {
		alertTrigger(w, bundle.T(lang, "editor.ai.error"))
		renderEditorBody(w, r, buildEditorView(lang, r.Form))
		return
	}

	desc := res.Description
	if len(res.Tags) > 0 {
		desc += "\n\n" + strings.Join(res.Tags, " ")
	}
	r.Form.Set("description", desc)
	renderEditorBody(w, r, buildEditorView(lang, r.Form))
}

// UploadFrag stores an uploaded image and appends its URL to the image list.
func UploadFrag(w http.ResponseWriter, r *http.Request) {
	if imageStore == nil {
		mw.WriteError(w, r, http.StatusServiceUnavailable, "image uploads are not configured")
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid upload")
		return
	}
	lang := mw.Lang(r)
	file, _, err := r.FormFile("image_file")
	if err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	img, err := imageStore.Put(r.Context(), file)
	if err != nil {
		mw.WriteError(w, r, http.StatusBadGateway, "upload failed")
		return
	}
	r.Form.Add("images", img.URL)
	renderEditorBody(w, r, buildEditorView(lang, r.Form))
}

// ExportPageHandler shows the embed code for the product in the query string.
func ExportPageHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	d := productFromQuery(r)

	pd := handlers.NewPageData(lang, r.URL.Path, bundle.T(lang, "nav.export"))
	pd.SEO = seo.Meta{Title: pd.Title}
	pd.Export = ExportPageView{
		Code:         export.Render(d),
		DownloadHref: "/export/download?" + d.Values().Encode(),
	}
	renderPage(w, r, "export_page", pd)
}

// ExportDownloadHandler serves the embed code as a file download.
func ExportDownloadHandler(w http.ResponseWriter, r *http.Request) {
	d := productFromQuery(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="product-widget.html"`)
	_, _ = w.Write([]byte(export.Render(d)))
}

func productFromQuery(r *http.Request) product.Data {
	q := r.URL.Query()
	if len(q) == 0 {
		return product.Default()
	}
	return product.FromForm(q)
}
