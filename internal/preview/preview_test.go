package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloggergen.org/cardgen-web/internal/product"
	"bloggergen.org/cardgen-web/internal/widget"
)

func TestWidgetClosedRendersCardOnly(t *testing.T) {
	d := product.Default()
	s := widget.NewState(d)
	html := string(Widget(d, s))

	assert.Contains(t, html, `id="bg-widget-preview"`)
	assert.Contains(t, html, "bg-card")
	assert.Contains(t, html, ">View Details</button>")
	assert.Contains(t, html, ">HOT SALE</span>")
	assert.Contains(t, html, "-25%")
	assert.NotContains(t, html, "bg-modal show")
	assert.Contains(t, html, `hx-post="/fragments/widget"`)
	assert.Contains(t, html, `"action":"open"`)
}

func TestWidgetOpenRendersDetails(t *testing.T) {
	d := product.Default()
	s := widget.NewState(d)
	s, _ = widget.Apply(d, s, widget.Event{Name: widget.EventOpen})
	html := string(Widget(d, s))

	assert.Contains(t, html, "bg-modal show")
	assert.Contains(t, html, "SAVE 25%")
	assert.Contains(t, html, ">Comprar Ahora</button>")
	assert.Contains(t, html, `"action":"qty"`)
	assert.Contains(t, html, `"action":"color"`)
	assert.Contains(t, html, "Quantity")
	// single image, no thumbnail strip
	assert.NotContains(t, html, "bg-thumbs")
}

func TestWidgetOrderFormView(t *testing.T) {
	d := product.Default()
	s := widget.NewState(d)
	s, _ = widget.Apply(d, s, widget.Event{Name: widget.EventOpen})
	s, _ = widget.Apply(d, s, widget.Event{Name: widget.EventOpenForm})
	s.Name = "Ana"
	html := string(Widget(d, s))

	assert.Contains(t, html, "Completa tu Pedido")
	assert.Contains(t, html, `name="w_name"`)
	assert.Contains(t, html, `value="Ana"`)
	assert.Contains(t, html, "Pago contra entrega")
	assert.Contains(t, html, "Pedir por WhatsApp")
	assert.Contains(t, html, `"action":"submit"`)
	// visible inputs replace the hidden carriers
	assert.Equal(t, 1, strings.Count(html, `name="w_name"`))
}

func TestWidgetOutOfStock(t *testing.T) {
	d := product.Default()
	d.InStock = false
	s := widget.NewState(d)
	s, _ = widget.Apply(d, s, widget.Event{Name: widget.EventOpen})
	html := string(Widget(d, s))

	assert.Contains(t, html, ">Sold Out</button>")
	assert.Contains(t, html, " disabled")
	assert.NotContains(t, html, "bg-qty-wrap")
	assert.NotContains(t, html, `"action":"form"`)
}

func TestRenderDescription(t *testing.T) {
	got := string(RenderDescription("A **bright** light."))
	assert.Contains(t, got, "<strong>bright</strong>")

	// script injection is stripped
	got = string(RenderDescription(`hello <script>alert(1)</script>`))
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "hello")

	assert.Equal(t, "", string(RenderDescription("")))
}
