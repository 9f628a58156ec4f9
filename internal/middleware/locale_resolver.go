package middleware

import (
	"context"
	"net/http"
	"strings"

	"bloggergen.org/cardgen-web/internal/i18n"
)

// Locale resolves the preferred language from the `hl` query override, the
// `hl` cookie, or Accept-Language, and stores it in the request context.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKeyLocaleFB, bundle.Fallback())
			var lang string
			if q := strings.ToLower(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{Name: "hl", Value: q, Path: "/"})
			} else if c, err := r.Cookie("hl"); err == nil && bundle.IsSupported(strings.ToLower(c.Value)) {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			if lang == "" {
				lang = bundle.Fallback()
			}
			ctx = context.WithValue(ctx, ctxKeyLocale, lang)
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Lang returns the resolved language for the request, defaulting to "en".
func Lang(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeyLocale).(string); ok && v != "" {
		return v
	}
	if v, ok := r.Context().Value(ctxKeyLocaleFB).(string); ok && v != "" {
		return v
	}
	return "en"
}
