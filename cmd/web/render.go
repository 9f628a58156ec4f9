package main

import (
	"encoding/json"
	"log"
	"net/http"

	"bloggergen.org/cardgen-web/internal/widget"
)

var pageTmpl = parseTemplates()

func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func renderEditorBody(w http.ResponseWriter, r *http.Request, v EditorView) {
	renderPage(w, r, "editor_body", v)
}

// effectTrigger surfaces a widget side effect as an HX-Trigger event for the
// page script (window.open / alert).
func effectTrigger(w http.ResponseWriter, eff widget.Effect) {
	var payload map[string]any
	switch eff.Kind {
	case widget.EffectNavigate:
		payload = map[string]any{"widget:navigate": map[string]string{"url": eff.URL}}
	case widget.EffectWhatsApp:
		payload = map[string]any{"widget:whatsapp": map[string]string{"url": eff.URL}}
	case widget.EffectAlert:
		payload = map[string]any{"widget:alert": map[string]string{"message": eff.Message}}
	default:
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(b))
}

func alertTrigger(w http.ResponseWriter, msg string) {
	effectTrigger(w, widget.Effect{Kind: widget.EffectAlert, Message: msg})
}
