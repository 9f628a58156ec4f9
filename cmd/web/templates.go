package main

import "html/template"

// Pages are small enough to keep as embedded sources; fragments that mirror
// the exported widget are built programmatically in internal/preview.

const layoutTmpl = `
{{define "head"}}
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  {{if .SEO.Description}}<meta name="description" content="{{.SEO.Description}}">{{end}}
  {{if .SEO.Canonical}}<link rel="canonical" href="{{.SEO.Canonical}}">{{end}}
  {{if .SEO.OG.Title}}<meta property="og:title" content="{{.SEO.OG.Title}}">{{end}}
  {{if .SEO.OG.Description}}<meta property="og:description" content="{{.SEO.OG.Description}}">{{end}}
  {{if .SEO.OG.Image}}<meta property="og:image" content="{{.SEO.OG.Image}}">{{end}}
  {{range .JSONLD}}{{jsonld .}}{{end}}
  <link href="https://fonts.googleapis.com/css2?family=Roboto:wght@300;400;500;700;900&display=swap" rel="stylesheet">
  <link rel="stylesheet" href="/assets/editor.css">
  <script src="https://unpkg.com/htmx.org@1.9.12"></script>
  {{if .Analytics.GA4MeasurementID}}
  <script async src="https://www.googletagmanager.com/gtag/js?id={{.Analytics.GA4MeasurementID}}"></script>
  <script>
    window.dataLayer = window.dataLayer || [];
    function gtag(){dataLayer.push(arguments);}
    gtag('js', new Date());
    gtag('config', '{{.Analytics.GA4MeasurementID}}');
  </script>
  {{end}}
  {{if .Analytics.GTMContainerID}}
  <script>
    (function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});
    var f=d.getElementsByTagName(s)[0],j=d.createElement(s);j.async=true;
    j.src='https://www.googletagmanager.com/gtm.js?id='+i;f.parentNode.insertBefore(j,f);
    })(window,document,'script','dataLayer','{{.Analytics.GTMContainerID}}');
  </script>
  {{end}}
</head>
{{end}}

{{define "topbar"}}
<header class="topbar">
  <span class="brand">{{t .Lang "editor.title"}}</span>
  <nav>
    {{range .Nav}}<a href="{{.Href}}" {{if .Active}}class="active"{{end}}>{{t $.Lang .LabelKey}}</a>{{end}}
  </nav>
</header>
{{end}}

{{define "effects_script"}}
<script>
  document.body.addEventListener('widget:navigate', function (e) { window.open(e.detail.url, '_blank'); });
  document.body.addEventListener('widget:whatsapp', function (e) { window.open(e.detail.url, '_blank'); });
  document.body.addEventListener('widget:alert', function (e) { alert(e.detail.message); });
</script>
{{end}}
`

const editorTmpl = `
{{define "editor_page"}}<!doctype html>
<html lang="{{.Lang}}">
{{template "head" .}}
<body>
{{template "topbar" .}}
<main id="editor-root">
{{template "editor_body" .Editor}}
</main>
{{template "effects_script" .}}
</body>
</html>
{{end}}

{{define "editor_body"}}
<div class="editor-grid">
  <section class="panel">
    <p class="tagline">{{t .Lang "editor.tagline"}}</p>
    <form id="product-form"
          hx-post="/fragments/editor" hx-trigger="change"
          hx-include="#widget-state" hx-target="#editor-root" hx-swap="innerHTML">

      <h2>{{t .Lang "editor.section.details"}}</h2>
      <label>{{t .Lang "editor.field.title"}}
        <input name="title" value="{{.Product.Title}}">
      </label>
      <label>{{t .Lang "editor.field.category"}}
        <input name="category" value="{{.Product.Category}}">
      </label>
      <label>{{t .Lang "editor.field.rating"}}
        <select name="rating">
          {{range .Ratings}}<option value="{{.Value}}" {{if .Active}}selected{{end}}>{{.Value}}</option>{{end}}
        </select>
      </label>
      <label class="check">
        <input type="checkbox" name="show_stars" value="1" {{if .Product.ShowStars}}checked{{end}}>
        {{t .Lang "editor.field.show_stars"}}
      </label>
      <label>{{t .Lang "editor.field.badge"}}
        <select name="badge">
          {{range .Badges}}<option value="{{.Value}}" {{if .Active}}selected{{end}}>{{.Label}}</option>{{end}}
        </select>
      </label>

      <h2>{{t .Lang "editor.section.ai"}}</h2>
      <label>{{t .Lang "editor.field.keywords"}}
        <input name="ai_keywords" value="{{.AIKeywords}}">
      </label>
      <button type="button" class="btn-ai"
              hx-post="/fragments/describe"
              hx-include="#product-form, #widget-state"
              hx-target="#editor-root" hx-swap="innerHTML"
              {{if eq .AIStatus "loading"}}disabled{{end}}>
        {{t .Lang "editor.action.generate"}}
      </button>
      {{if .AILabel}}<p class="ai-status ai-{{.AIStatus}}">{{.AILabel}}</p>{{end}}
      <label>{{t .Lang "editor.field.description"}}
        <textarea name="description" rows="4">{{.Product.Description}}</textarea>
      </label>

      <h2>{{t .Lang "editor.section.pricing"}}</h2>
      <label>{{t .Lang "editor.field.price"}}
        <input name="price" value="{{.Product.Price}}">
      </label>
      <label>{{t .Lang "editor.field.original_price"}}
        <input name="original_price" value="{{.Product.OriginalPrice}}">
      </label>

      <h2>{{t .Lang "editor.section.media"}}</h2>
      <ul class="item-list">
        {{range $i, $img := .Product.Images}}
        <li>
          <input type="hidden" name="images" value="{{$img}}">
          <span class="item-url">{{$img}}</span>
          <button type="button"
                  hx-post="/fragments/editor" hx-vals='{"action":"remove_image","value":"{{$i}}"}'
                  hx-include="#product-form, #widget-state"
                  hx-target="#editor-root" hx-swap="innerHTML">{{t $.Lang "editor.action.remove"}}</button>
        </li>
        {{end}}
      </ul>
      <div class="item-add">
        <input name="new_image" placeholder="https://...">
        <button type="button"
                hx-post="/fragments/editor" hx-vals='{"action":"add_image"}'
                hx-include="#product-form, #widget-state"
                hx-target="#editor-root" hx-swap="innerHTML">{{t .Lang "editor.action.add_image"}}</button>
      </div>
      {{if .Uploads}}
      <div class="item-add">
        <input type="file" name="image_file" form="upload-form">
      </div>
      {{end}}

      <h2>{{t .Lang "editor.section.colors"}}</h2>
      <ul class="item-list swatches">
        {{range $i, $c := .Product.Colors}}
        <li>
          <input type="hidden" name="colors" value="{{$c}}">
          <span class="swatch" style="background-color: {{$c | css}}"></span>
          <span class="item-url">{{$c}}</span>
          <button type="button"
                  hx-post="/fragments/editor" hx-vals='{"action":"remove_color","value":"{{$i}}"}'
                  hx-include="#product-form, #widget-state"
                  hx-target="#editor-root" hx-swap="innerHTML">{{t $.Lang "editor.action.remove"}}</button>
        </li>
        {{end}}
      </ul>
      <div class="item-add">
        <input type="color" name="new_color" value="#000000">
        <button type="button"
                hx-post="/fragments/editor" hx-vals='{"action":"add_color"}'
                hx-include="#product-form, #widget-state"
                hx-target="#editor-root" hx-swap="innerHTML">{{t .Lang "editor.action.add_color"}}</button>
      </div>

      <h2>{{t .Lang "editor.section.purchase"}}</h2>
      <label>{{t .Lang "editor.field.buy_link"}}
        <input name="buy_link" value="{{.Product.BuyLink}}">
      </label>
      <label>{{t .Lang "editor.field.button_text"}}
        <input name="button_text" value="{{.Product.ButtonText}}">
      </label>
      <label>{{t .Lang "editor.field.whatsapp"}}
        <input name="whatsapp" value="{{.Product.WhatsAppNumber}}">
      </label>
      <label class="check">
        <input type="checkbox" name="in_stock" value="1" {{if .Product.InStock}}checked{{end}}>
        {{t .Lang "editor.field.in_stock"}}
      </label>
    </form>
    {{if .Uploads}}
    <form id="upload-form" hx-post="/fragments/upload" hx-encoding="multipart/form-data"
          hx-include="#product-form, #widget-state"
          hx-target="#editor-root" hx-swap="innerHTML" hx-trigger="change from:input[name='image_file']">
    </form>
    {{end}}
  </section>

  <section class="panel">
    <h2>{{t .Lang "editor.preview.heading"}}</h2>
    <div id="widget-preview">{{.WidgetHTML}}</div>
  </section>

  <section class="panel code-panel">
    <div class="code-head">
      <h2>{{t .Lang "editor.code.heading"}}</h2>
      <button type="button" onclick="navigator.clipboard.writeText(document.getElementById('embed-code').textContent)">
        {{t .Lang "editor.code.copy"}}
      </button>
      <a class="btn-download" href="{{.ExportHref}}">{{t .Lang "nav.export"}}</a>
    </div>
    <pre id="embed-code">{{.Code}}</pre>
    <p class="code-hint">{{t .Lang "editor.code.hint"}}</p>
  </section>
</div>
{{end}}
`

const exportTmpl = `
{{define "export_page"}}<!doctype html>
<html lang="{{.Lang}}">
{{template "head" .}}
<body>
{{template "topbar" .}}
<main class="export-main">
  <div class="code-head">
    <h2>{{t .Lang "editor.code.heading"}}</h2>
    <button type="button" onclick="navigator.clipboard.writeText(document.getElementById('embed-code').textContent)">
      {{t .Lang "editor.code.copy"}}
    </button>
    <a class="btn-download" href="{{.Export.DownloadHref}}">{{t .Lang "editor.action.download"}}</a>
  </div>
  <pre id="embed-code">{{.Export.Code}}</pre>
  <p class="code-hint">{{t .Lang "editor.code.hint"}}</p>
</main>
</body>
</html>
{{end}}
`

func parseTemplates() *template.Template {
	funcMap := template.FuncMap{
		"t": func(lang, key string) string {
			if bundle == nil {
				return key
			}
			return bundle.T(lang, key)
		},
		"jsonld": func(s string) template.HTML {
			return template.HTML(`<script type="application/ld+json">` + s + `</script>`)
		},
		"css": func(s string) template.CSS {
			return template.CSS(s)
		},
	}
	return template.Must(template.New("_root").Funcs(funcMap).Parse(layoutTmpl + editorTmpl + exportTmpl))
}
