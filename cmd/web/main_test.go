package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bloggergen.org/cardgen-web/internal/describe"
	"bloggergen.org/cardgen-web/internal/i18n"
	"bloggergen.org/cardgen-web/internal/product"
)

// newTestRouter wires the globals the way main() does, minus uploads.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	var err error
	bundle, err = i18n.Load("../../locales", "en", []string{"en", "es"})
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	generator = describe.Fallback{}
	imageStore = nil
	return newRouter("")
}

func postForm(t *testing.T, srv http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzOK(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestEditorPageRendersFormAndPreview(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`id="product-form"`,
		`Ambiental Solar Light`,
		`id="widget-preview"`,
		`bg-widget-preview`,
		`id="embed-code"`,
		`START PRODUCT WIDGET [BloggerGenAI]`,
		`application/ld+json`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("editor page missing %q", want)
		}
	}
}

func TestEditorPageSpanishChrome(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/?hl=es", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Generador de Tarjetas de Producto") {
		t.Errorf("expected Spanish title in body")
	}
}

func TestWidgetFragOpenShowsModal(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("action", "open")
	rec := postForm(t, srv, "/fragments/widget", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "bg-modal show") {
		t.Errorf("expected open modal in fragment")
	}
	if !strings.Contains(body, "SAVE 25%") {
		t.Errorf("expected discount tag in modal")
	}
	if got := rec.Header().Get("HX-Trigger"); got != "" {
		t.Errorf("open should have no side effect, got HX-Trigger=%q", got)
	}
}

func TestWidgetFragSubmitTriggersWhatsApp(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("w_open", "1")
	form.Set("w_view", "form")
	form.Set("w_name", "Ana")
	form.Set("w_city", "Quito")
	form.Set("action", "submit")
	rec := postForm(t, srv, "/fragments/widget", form)
	trig := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trig, "widget:whatsapp") {
		t.Fatalf("expected whatsapp trigger, got %q", trig)
	}
	if !strings.Contains(trig, "wa.me/1234567890") {
		t.Errorf("expected wa.me deep link in trigger, got %q", trig)
	}
	if !strings.Contains(trig, "Hola%2C%20deseo%20pedir") {
		t.Errorf("expected encoded greeting in trigger, got %q", trig)
	}
}

func TestWidgetFragSubmitWithoutNameAlerts(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("w_open", "1")
	form.Set("w_view", "form")
	form.Set("action", "submit")
	rec := postForm(t, srv, "/fragments/widget", form)
	trig := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trig, "widget:alert") {
		t.Fatalf("expected alert trigger, got %q", trig)
	}
	if !strings.Contains(trig, "Por favor completa") {
		t.Errorf("expected validation message, got %q", trig)
	}
}

func TestWidgetFragFormWithoutWhatsAppNavigates(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("whatsapp", "")
	form.Set("buy_link", "https://shop.example/item")
	form.Set("w_open", "1")
	form.Set("action", "form")
	rec := postForm(t, srv, "/fragments/widget", form)
	trig := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trig, "widget:navigate") {
		t.Fatalf("expected navigate trigger, got %q", trig)
	}
	if !strings.Contains(trig, "https://shop.example/item") {
		t.Errorf("expected buy link in trigger, got %q", trig)
	}
}

func TestEditorFragAddImage(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("action", "add_image")
	form.Set("new_image", "https://example.com/extra.jpg")
	rec := postForm(t, srv, "/fragments/editor", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "https://example.com/extra.jpg") {
		t.Errorf("expected added image in editor body")
	}
	if rec.Header().Get("HX-Push-Url") == "" {
		t.Errorf("expected HX-Push-Url on editor fragment")
	}
}

func TestDescribeFragFallbackFillsDescription(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("ai_keywords", "solar, garden")
	rec := postForm(t, srv, "/fragments/describe", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Discover Ambiental Solar Light") {
		t.Errorf("expected fallback draft in description")
	}
	if !strings.Contains(body, "#solar") {
		t.Errorf("expected keyword hashtag in description")
	}
}

func TestDescribeFragRequiresTitle(t *testing.T) {
	srv := newTestRouter(t)
	form := product.Default().Values()
	form.Set("title", "")
	rec := postForm(t, srv, "/fragments/describe", form)
	trig := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trig, "widget:alert") {
		t.Fatalf("expected alert trigger, got %q", trig)
	}
}

func TestUploadFragUnconfigured(t *testing.T) {
	srv := newTestRouter(t)
	rec := postForm(t, srv, "/fragments/upload", url.Values{})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestExportDownload(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/export/download?"+product.Default().Values().Encode(), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "attachment") {
		t.Errorf("expected attachment disposition, got %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "END PRODUCT WIDGET") {
		t.Errorf("expected embed markers in download")
	}
	if !strings.Contains(body, "HOT SALE") {
		t.Errorf("expected badge label in download")
	}
}

func TestExportPage(t *testing.T) {
	srv := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="embed-code"`) {
		t.Errorf("expected code block on export page")
	}
	if !strings.Contains(body, "/export/download?") {
		t.Errorf("expected download link on export page")
	}
}
