// Package preview renders the live widget for the editor page. The markup
// mirrors the exported embed (same bg- classes and stylesheet) but swaps the
// inline script for htmx fragment requests, with the full widget state
// carried in hidden fields.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"bloggergen.org/cardgen-web/internal/export"
	"bloggergen.org/cardgen-web/internal/format"
	"bloggergen.org/cardgen-web/internal/message"
	"bloggergen.org/cardgen-web/internal/product"
	"bloggergen.org/cardgen-web/internal/widget"
)

// FragmentPath is the endpoint every widget control posts to.
const FragmentPath = "/fragments/widget"

// previewID scopes the shared stylesheet to the editor's preview pane.
const previewID = "preview"

// Widget renders the complete interactive preview fragment for d in state s.
func Widget(d product.Data, s widget.State) template.HTML {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<div id=\"bg-widget-%s\">\n", previewID)
	b.WriteString("<style>\n")
	b.WriteString(export.Stylesheet(d, previewID))
	b.WriteString("</style>\n")
	b.WriteString("<form id=\"widget-state\">\n")
	writeStateFields(&b, s, s.Open && s.View == widget.ViewOrderForm)
	b.WriteString("</form>\n")
	writeCard(&b, d)
	if s.Open {
		writeModal(&b, d, s)
	}
	b.WriteString("</div>\n")
	return template.HTML(b.String())
}

func writeStateFields(b *bytes.Buffer, s widget.State, orderFormVisible bool) {
	keys := []string{"w_open", "w_view", "w_img", "w_color", "w_qty"}
	if !orderFormVisible {
		// the order form renders these as visible inputs; carry them hidden
		// otherwise so typed values survive view switches
		keys = append(keys, "w_name", "w_city", "w_address", "w_payment")
	}
	vals := s.Values()
	for _, key := range keys {
		for _, v := range vals[key] {
			fmt.Fprintf(b, "  <input type=\"hidden\" name=\"%s\" value=\"%s\">\n", attr(key), attr(v))
		}
	}
}

func action(b *bytes.Buffer, name, value string) {
	if value == "" {
		fmt.Fprintf(b, " hx-post=\"%s\" hx-vals='{\"action\":\"%s\"}'", FragmentPath, name)
	} else {
		fmt.Fprintf(b, " hx-post=\"%s\" hx-vals='{\"action\":\"%s\",\"value\":%q}'", FragmentPath, name, value)
	}
	b.WriteString(" hx-include=\"#product-form, #widget-state\" hx-target=\"#widget-preview\" hx-swap=\"innerHTML\"")
}

func writeCard(b *bytes.Buffer, d product.Data) {
	b.WriteString("<div class=\"bg-card\"")
	action(b, widget.EventOpen, "")
	b.WriteString(">\n")
	b.WriteString("  <div class=\"bg-img-wrap\">\n")
	fmt.Fprintf(b, "    <img src=\"%s\" alt=\"%s\" class=\"bg-img\" />\n", attr(d.PrimaryImage()), attr(d.Title))
	if label := d.BadgeLabel(); label != "" {
		fmt.Fprintf(b, "    <span class=\"bg-badge %s\">%s</span>\n", badgeClass(d.Badge), esc(label))
	}
	if d.ShowDiscount() {
		fmt.Fprintf(b, "    <span class=\"bg-badge sale\">-%d%%</span>\n", d.DiscountPercent())
	}
	if !d.InStock {
		b.WriteString("    <span class=\"bg-badge sold\">SOLD OUT</span>\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("  <div class=\"bg-content\">\n")
	b.WriteString("    <div class=\"bg-meta\">\n")
	fmt.Fprintf(b, "      <span class=\"bg-cat\">%s</span>\n", esc(d.Category))
	if d.ShowStars {
		fmt.Fprintf(b, "      <span style=\"color:#facc15\">%s</span>\n", strings.Repeat("★", d.Rating))
	}
	b.WriteString("    </div>\n")
	fmt.Fprintf(b, "    <h3 class=\"bg-title\">%s</h3>\n", esc(d.Title))
	b.WriteString("    <div class=\"bg-price-row\">\n")
	fmt.Fprintf(b, "      <span class=\"bg-price\">%s</span>\n", esc(format.Price(d.Price)))
	if d.OriginalPrice != "" {
		fmt.Fprintf(b, "      <span class=\"bg-old-price\">%s</span>\n", esc(format.Price(d.OriginalPrice)))
	}
	b.WriteString("    </div>\n")
	fmt.Fprintf(b, "    <button type=\"button\" class=\"bg-btn-card\">%s</button>\n", esc(d.CardCTALabel()))
	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
}

func writeModal(b *bytes.Buffer, d product.Data, s widget.State) {
	b.WriteString("<div class=\"bg-modal show\" id=\"preview-modal\">\n")
	b.WriteString("  <div class=\"bg-modal-content\">\n")
	b.WriteString("    <span class=\"bg-close\"")
	action(b, widget.EventClose, "")
	b.WriteString(">&times;</span>\n")
	writeGallery(b, d, s)
	b.WriteString("    <div class=\"bg-col-info\">\n")
	if s.View == widget.ViewOrderForm {
		writeOrderForm(b, d, s)
	} else {
		writeDetails(b, d, s)
	}
	b.WriteString("    </div>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
}

func writeGallery(b *bytes.Buffer, d product.Data, s widget.State) {
	main := d.PrimaryImage()
	if s.ImageIndex >= 0 && s.ImageIndex < len(d.Images) {
		main = d.Images[s.ImageIndex]
	}
	b.WriteString("    <div class=\"bg-col-img\">\n")
	b.WriteString("      <div class=\"bg-modal-img-wrap\">\n")
	fmt.Fprintf(b, "        <img src=\"%s\" class=\"bg-modal-img\" alt=\"%s\" />\n", attr(main), attr(d.Title))
	b.WriteString("      </div>\n")
	if len(d.Images) > 1 {
		b.WriteString("      <div class=\"bg-thumbs\">\n")
		for i, img := range d.Images {
			active := ""
			if i == s.ImageIndex {
				active = " active"
			}
			fmt.Fprintf(b, "        <img src=\"%s\" class=\"bg-thumb%s\"", attr(img), active)
			action(b, widget.EventSelectImage, fmt.Sprintf("%d", i))
			b.WriteString(" />\n")
		}
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </div>\n")
}

func writeDetails(b *bytes.Buffer, d product.Data, s widget.State) {
	b.WriteString("      <div class=\"bg-view-details\">\n")
	fmt.Fprintf(b, "        <h2 class=\"bg-m-title\">%s</h2>\n", esc(d.Title))
	b.WriteString("        <div class=\"bg-m-price\">\n")
	fmt.Fprintf(b, "          %s\n", esc(format.Price(d.Price)))
	if d.OriginalPrice != "" {
		fmt.Fprintf(b, "          <span class=\"bg-old-price\" style=\"font-size:18px\">%s</span>\n", esc(format.Price(d.OriginalPrice)))
	}
	if disc := d.DiscountPercent(); disc > 0 {
		fmt.Fprintf(b, "          <span class=\"bg-m-tag\">SAVE %d%%</span>\n", disc)
	}
	b.WriteString("        </div>\n")
	if len(d.Colors) > 0 {
		fmt.Fprintf(b, "        <span class=\"bg-lbl\">Color : <span class=\"bg-col-name\">%s</span></span>\n", esc(s.Color))
		b.WriteString("        <div class=\"bg-colors\">\n")
		for _, c := range d.Colors {
			active := ""
			if c == s.Color {
				active = " active"
			}
			fmt.Fprintf(b, "          <div class=\"bg-color-opt%s\" style=\"background-color: %s\"", active, attr(c))
			action(b, widget.EventSelectColor, c)
			b.WriteString("></div>\n")
		}
		b.WriteString("        </div>\n")
	}
	if d.PurchaseEnabled() {
		b.WriteString("        <span class=\"bg-lbl\">Quantity</span>\n")
		b.WriteString("        <div class=\"bg-qty-wrap\">\n")
		b.WriteString("          <button type=\"button\" class=\"bg-qty-btn\"")
		action(b, widget.EventQuantity, "-1")
		b.WriteString(">-</button>\n")
		fmt.Fprintf(b, "          <span class=\"bg-qty-val\">%d</span>\n", s.Quantity)
		b.WriteString("          <button type=\"button\" class=\"bg-qty-btn\"")
		action(b, widget.EventQuantity, "1")
		b.WriteString(">+</button>\n")
		b.WriteString("        </div>\n")
	}
	b.WriteString("        <button type=\"button\" class=\"bg-m-btn\"")
	if d.PurchaseEnabled() {
		action(b, widget.EventOpenForm, "")
	} else {
		b.WriteString(" disabled")
	}
	fmt.Fprintf(b, ">%s</button>\n", esc(d.ModalCTALabel()))
	b.WriteString("        <div class=\"bg-m-desc\">\n")
	b.WriteString("          <span class=\"bg-lbl\" style=\"margin-bottom:5px\">Description</span>\n")
	fmt.Fprintf(b, "          %s\n", RenderDescription(d.Description))
	b.WriteString("        </div>\n")
	b.WriteString("      </div>\n")
}

func writeOrderForm(b *bytes.Buffer, d product.Data, s widget.State) {
	b.WriteString("      <div class=\"bg-form-view\" style=\"display:flex\">\n")
	b.WriteString("        <button type=\"button\" class=\"bg-btn-back\"")
	action(b, widget.EventBack, "")
	b.WriteString(">&larr; Back to product</button>\n")
	b.WriteString("        <h3 class=\"bg-form-title\">Completa tu Pedido</h3>\n")
	b.WriteString("        <p class=\"bg-form-sub\">Envía tu pedido directamente por WhatsApp.</p>\n")
	inputGroup(b, "Nombre Completo", "w_name", s.Name, "Tu nombre")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">País</label>\n")
	b.WriteString("          <input class=\"bg-inp readonly\" value=\"Ecuador\" readonly />\n")
	b.WriteString("        </div>\n")
	inputGroup(b, "Ciudad", "w_city", s.City, "Ej: Quito, Guayaquil")
	inputGroup(b, "Dirección / Calles", "w_address", s.Address, "Ej: Av. Amazonas y NNUU")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">Forma de Pago</label>\n")
	b.WriteString("          <select name=\"w_payment\" form=\"widget-state\" class=\"bg-inp\">\n")
	for _, p := range message.PaymentMethods() {
		selected := ""
		if p == s.Payment {
			selected = " selected"
		}
		fmt.Fprintf(b, "            <option value=\"%s\"%s>%s</option>\n", attr(p), selected, esc(p))
	}
	b.WriteString("          </select>\n")
	b.WriteString("        </div>\n")
	b.WriteString("        <button type=\"button\" class=\"bg-btn-wa\"")
	action(b, widget.EventSubmit, "")
	b.WriteString(">Pedir por WhatsApp</button>\n")
	b.WriteString("      </div>\n")
}

func inputGroup(b *bytes.Buffer, label, name, value, placeholder string) {
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	fmt.Fprintf(b, "          <label class=\"bg-inp-lbl\">%s</label>\n", esc(label))
	fmt.Fprintf(b, "          <input name=\"%s\" form=\"widget-state\" class=\"bg-inp\" value=\"%s\" placeholder=\"%s\" />\n", attr(name), attr(value), attr(placeholder))
	b.WriteString("        </div>\n")
}

func badgeClass(badge product.Badge) string {
	return strings.ReplaceAll(string(badge), "_", "-")
}

func esc(s string) string  { return template.HTMLEscapeString(s) }
func attr(s string) string { return template.HTMLEscapeString(s) }
