// Package export renders a product as a self-contained embed snippet:
// markup, styles, and an inline script that reproduces the interactive
// widget's behavior. Everything is namespaced by a per-instance id so
// multiple embeds coexist on one page.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"bloggergen.org/cardgen-web/internal/product"
)

const instanceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewInstanceID returns a fresh 9-character lowercase base36 id.
func NewInstanceID() string {
	u := uuid.New()
	b := make([]byte, 9)
	for i := range b {
		b[i] = instanceAlphabet[int(u[i])%len(instanceAlphabet)]
	}
	return string(b)
}

// Render builds the full embed snippet for d using a fresh instance id.
func Render(d product.Data) string {
	return RenderWithID(d, NewInstanceID())
}

// RenderWithID builds the embed snippet with a caller-chosen instance id.
func RenderWithID(d product.Data, id string) string {
	var b bytes.Buffer
	b.WriteString("<!-- START PRODUCT WIDGET [BloggerGenAI] -->\n")
	fmt.Fprintf(&b, "<div id=\"bg-widget-%s\">\n", id)
	b.WriteString("<link href=\"https://fonts.googleapis.com/css2?family=Roboto:wght@300;400;500;700;900&display=swap\" rel=\"stylesheet\">\n")
	b.WriteString("<style>\n")
	b.WriteString(Stylesheet(d, id))
	b.WriteString("</style>\n")
	writeCard(&b, d, id)
	writeModal(&b, d, id)
	writeScript(&b, d, id)
	b.WriteString("</div>\n")
	b.WriteString("<!-- END PRODUCT WIDGET -->")
	return b.String()
}

// Stylesheet emits the widget CSS scoped to the instance wrapper. The
// interactive preview reuses it so both renderers stay visually identical.
func Stylesheet(d product.Data, id string) string {
	btnBG, btnFG, btnPointer := "#3f51b5", "#fff", "auto"
	btnHover, btnCursor, btnShadow := "#303f9f", "pointer", "0 4px 6px rgba(0,0,0,0.1)"
	if !d.InStock {
		btnBG, btnFG, btnPointer = "#e2e8f0", "#94a3b8", "none"
		btnHover, btnCursor, btnShadow = "#e2e8f0", "not-allowed", "none"
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "  #bg-widget-%s { font-family: 'Roboto', sans-serif; }\n", id)
	b.WriteString("  .bg-card { max-width: 350px; background: #fff; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.05); overflow: hidden; border: 1px solid #e0e0e0; margin: 20px auto; transition: transform 0.3s ease; cursor: pointer; position: relative; }\n")
	b.WriteString("  .bg-card:hover { transform: translateY(-3px); box-shadow: 0 10px 20px rgba(0,0,0,0.08); border-color: #3f51b5; }\n")
	b.WriteString("  .bg-img-wrap { position: relative; height: 250px; overflow: hidden; background: #f4f6f8; }\n")
	b.WriteString("  .bg-img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.5s ease; }\n")
	b.WriteString("  .bg-card:hover .bg-img { transform: scale(1.1); }\n")
	b.WriteString("  .bg-badge { position: absolute; top: 12px; padding: 4px 8px; border-radius: 4px; font-size: 11px; font-weight: 700; color: #fff; z-index: 10; text-transform: uppercase; }\n")
	b.WriteString("  .bg-badge.hot { left: 12px; background: #ef4444; }\n")
	b.WriteString("  .bg-badge.black-friday { left: 12px; background: #000000; }\n")
	b.WriteString("  .bg-badge.coming-soon { left: 12px; background: #2563eb; }\n")
	b.WriteString("  .bg-badge.pre-order { left: 12px; background: #2e7d32; }\n")
	b.WriteString("  .bg-badge.sold-out { left: 12px; background: #6b7280; }\n")
	b.WriteString("  .bg-badge.sale { right: 12px; background: #4b5563; }\n")
	b.WriteString("  .bg-badge.sold { background: rgba(0,0,0,0.7); color: #fff; top: 50%; left: 50%; transform: translate(-50%, -50%); padding: 8px 16px; font-size: 14px; border: 2px solid #fff; }\n")
	b.WriteString("  .bg-content { padding: 15px; }\n")
	b.WriteString("  .bg-meta { display: flex; justify-content: space-between; align-items: center; margin-bottom: 8px; }\n")
	b.WriteString("  .bg-cat { font-size: 11px; font-weight: 600; color: #6b7280; text-transform: uppercase; }\n")
	b.WriteString("  .bg-title { font-size: 16px; font-weight: 700; color: #2c3e50; margin: 0 0 8px 0; line-height: 1.4; height: 44px; overflow: hidden; display: -webkit-box; -webkit-line-clamp: 2; -webkit-box-orient: vertical; }\n")
	b.WriteString("  .bg-price-row { display: flex; align-items: baseline; gap: 8px; margin-bottom: 12px; }\n")
	b.WriteString("  .bg-price { font-size: 20px; font-weight: 700; color: #3f51b5; }\n")
	b.WriteString("  .bg-old-price { font-size: 14px; text-decoration: line-through; color: #94a3b8; }\n")
	fmt.Fprintf(&b, "  .bg-btn-card { display: block; width: 100%%; background: %s; color: %s !important; text-align: center; padding: 10px; border-radius: 4px; text-decoration: none !important; font-weight: 600; font-size: 14px; pointer-events: %s; transition: background 0.3s; }\n", btnBG, btnFG, btnPointer)
	fmt.Fprintf(&b, "  .bg-btn-card:hover { background: %s; }\n", btnHover)
	b.WriteString("  .bg-modal { display: none; position: fixed; z-index: 99999; left: 0; top: 0; width: 100%; height: 100%; overflow: auto; background-color: rgba(0,0,0,0.6); backdrop-filter: blur(5px); align-items: center; justify-content: center; opacity: 0; transition: opacity 0.3s; font-family: 'Roboto', sans-serif; }\n")
	b.WriteString("  .bg-modal.show { display: flex; opacity: 1; }\n")
	b.WriteString("  .bg-modal-content { background-color: #fff; width: 95%; max-width: 900px; border-radius: 8px; box-shadow: 0 25px 50px -12px rgba(0,0,0,0.25); position: relative; overflow: hidden; display: flex; flex-direction: column; animation: bgSlideUp 0.4s cubic-bezier(0.16, 1, 0.3, 1); }\n")
	b.WriteString("  @media (min-width: 768px) { .bg-modal-content { flex-direction: row; height: auto; max-height: 90vh; } }\n")
	b.WriteString("  @keyframes bgSlideUp { from { transform: translateY(50px); opacity: 0; } to { transform: translateY(0); opacity: 1; } }\n")
	b.WriteString("  .bg-close { position: absolute; top: 15px; right: 15px; color: #64748b; font-size: 28px; font-weight: bold; cursor: pointer; z-index: 20; line-height: 1; width: 30px; height: 30px; text-align: center; background: rgba(255,255,255,0.8); border-radius: 50%; }\n")
	b.WriteString("  .bg-close:hover { color: #000; background: #fff; }\n")
	b.WriteString("  .bg-col-img { width: 100%; background: #f4f6f8; padding: 30px; display: flex; flex-direction: column; align-items: center; justify-content: center; position: relative; }\n")
	b.WriteString("  @media (min-width: 768px) { .bg-col-img { width: 50%; } }\n")
	b.WriteString("  .bg-modal-img-wrap { width: 100%; height: 300px; display: flex; align-items: center; justify-content: center; margin-bottom: 15px; }\n")
	b.WriteString("  .bg-modal-img { max-width: 100%; max-height: 100%; object-fit: contain; }\n")
	b.WriteString("  .bg-thumbs { display: flex; gap: 10px; overflow-x: auto; width: 100%; padding-bottom: 5px; }\n")
	b.WriteString("  .bg-thumb { width: 60px; height: 60px; border: 2px solid #e2e8f0; border-radius: 4px; cursor: pointer; object-fit: cover; opacity: 0.7; transition: all 0.2s; flex-shrink: 0; }\n")
	b.WriteString("  .bg-thumb:hover, .bg-thumb.active { border-color: #3f51b5; opacity: 1; transform: scale(1.05); }\n")
	b.WriteString("  .bg-col-info { width: 100%; padding: 30px; overflow-y: auto; max-height: 60vh; display: flex; flex-direction: column; }\n")
	b.WriteString("  @media (min-width: 768px) { .bg-col-info { width: 50%; max-height: none; } }\n")
	b.WriteString("  .bg-m-title { font-size: 24px; font-weight: 700; color: #2c3e50; margin: 0 0 10px 0; line-height: 1.2; }\n")
	b.WriteString("  .bg-m-price { font-size: 30px; font-weight: 700; color: #3f51b5; display: flex; align-items: center; gap: 10px; margin-bottom: 20px; }\n")
	b.WriteString("  .bg-m-tag { background: #f3f4f6; color: #374151; font-size: 12px; padding: 4px 8px; border-radius: 4px; font-weight: 700; vertical-align: middle; }\n")
	b.WriteString("  .bg-lbl { font-size: 12px; font-weight: 700; color: #64748b; text-transform: uppercase; letter-spacing: 0.05em; margin-bottom: 8px; display: block; }\n")
	b.WriteString("  .bg-colors { display: flex; gap: 10px; margin-bottom: 25px; }\n")
	b.WriteString("  .bg-color-opt { width: 32px; height: 32px; border-radius: 50%; cursor: pointer; border: 2px solid #fff; box-shadow: 0 0 0 1px #e2e8f0; transition: transform 0.2s; }\n")
	b.WriteString("  .bg-color-opt:hover { transform: scale(1.1); }\n")
	b.WriteString("  .bg-color-opt.active { box-shadow: 0 0 0 2px #3f51b5; transform: scale(1.1); }\n")
	b.WriteString("  .bg-qty-wrap { display: flex; align-items: center; border: 1px solid #cbd5e1; border-radius: 4px; width: max-content; margin-bottom: 25px; }\n")
	b.WriteString("  .bg-qty-btn { background: none; border: none; padding: 10px 15px; cursor: pointer; font-size: 18px; color: #64748b; }\n")
	b.WriteString("  .bg-qty-btn:hover { background: #f1f5f9; color: #0f172a; }\n")
	b.WriteString("  .bg-qty-val { font-weight: 600; width: 30px; text-align: center; }\n")
	fmt.Fprintf(&b, "  .bg-m-btn { display: block; width: 100%%; background: %s; color: %s; text-align: center; padding: 15px; border-radius: 8px; font-weight: 700; font-size: 16px; cursor: %s; border: none; transition: background 0.2s; text-decoration: none; box-shadow: %s; }\n", btnBG, btnFG, btnCursor, btnShadow)
	fmt.Fprintf(&b, "  .bg-m-btn:hover { background: %s; }\n", btnHover)
	b.WriteString("  .bg-m-desc { margin-top: 25px; font-size: 14px; line-height: 1.6; color: #475569; border-top: 1px solid #e2e8f0; padding-top: 20px; }\n")
	b.WriteString("  .bg-form-view { display: none; flex-direction: column; height: 100%; }\n")
	b.WriteString("  .bg-form-title { font-size: 22px; font-weight: 700; color: #2c3e50; margin-bottom: 4px; }\n")
	b.WriteString("  .bg-form-sub { font-size: 14px; color: #64748b; margin-bottom: 20px; }\n")
	b.WriteString("  .bg-inp-group { margin-bottom: 16px; }\n")
	b.WriteString("  .bg-inp-lbl { display: block; font-size: 13px; font-weight: 600; color: #475569; margin-bottom: 6px; }\n")
	b.WriteString("  .bg-inp { width: 100%; padding: 12px; border-radius: 4px; border: 1px solid #cbd5e1; font-size: 14px; outline: none; transition: border-color 0.2s; background: #fff; }\n")
	b.WriteString("  .bg-inp:focus { border-color: #3f51b5; }\n")
	b.WriteString("  .bg-inp.readonly { background: #f1f5f9; color: #64748b; cursor: default; }\n")
	b.WriteString("  .bg-btn-back { background: none; border: none; padding: 0; color: #64748b; cursor: pointer; font-size: 14px; font-weight: 600; margin-bottom: 20px; display: flex; align-items: center; }\n")
	b.WriteString("  .bg-btn-wa { background: #2e7d32; color: #fff; width: 100%; padding: 15px; border-radius: 8px; font-weight: 700; font-size: 16px; border: none; cursor: pointer; margin-top: auto; box-shadow: 0 4px 6px -1px rgba(46,125,50,0.3); transition: background 0.3s; }\n")
	b.WriteString("  .bg-btn-wa:hover { background: #1b5e20; }\n")
	return b.String()
}

func writeCard(b *bytes.Buffer, d product.Data, id string) {
	b.WriteString("<!-- Card Trigger -->\n")
	fmt.Fprintf(b, "<div class=\"bg-card\" onclick=\"openModal_%s()\">\n", id)
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
	fmt.Fprintf(b, "      <span class=\"bg-price\">$%s</span>\n", esc(d.Price))
	if d.OriginalPrice != "" {
		fmt.Fprintf(b, "      <span class=\"bg-old-price\">$%s</span>\n", esc(d.OriginalPrice))
	}
	b.WriteString("    </div>\n")
	fmt.Fprintf(b, "    <button class=\"bg-btn-card\">%s</button>\n", esc(d.CardCTALabel()))
	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
}

func writeModal(b *bytes.Buffer, d product.Data, id string) {
	b.WriteString("<!-- Modal -->\n")
	fmt.Fprintf(b, "<div id=\"modal-%s\" class=\"bg-modal\" onclick=\"if(event.target === this) closeModal_%s()\">\n", id, id)
	b.WriteString("  <div class=\"bg-modal-content\">\n")
	fmt.Fprintf(b, "    <span class=\"bg-close\" onclick=\"closeModal_%s()\">&times;</span>\n", id)
	b.WriteString("    <div class=\"bg-col-img\">\n")
	b.WriteString("      <div class=\"bg-modal-img-wrap\">\n")
	fmt.Fprintf(b, "        <img id=\"main-img-%s\" src=\"%s\" class=\"bg-modal-img\" alt=\"%s\" />\n", id, attr(d.PrimaryImage()), attr(d.Title))
	b.WriteString("      </div>\n")
	if len(d.Images) > 1 {
		b.WriteString("      <div class=\"bg-thumbs\">\n")
		for i, img := range d.Images {
			active := ""
			if i == 0 {
				active = " active"
			}
			fmt.Fprintf(b, "        <img src=\"%s\" class=\"bg-thumb%s\" onclick=\"changeImg_%s(this, '%s')\" />\n", attr(img), active, id, jsAttrArg(img))
		}
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </div>\n")
	b.WriteString("    <div class=\"bg-col-info\">\n")
	writeModalDetails(b, d, id)
	writeModalForm(b, d, id)
	b.WriteString("    </div>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
}

func writeModalDetails(b *bytes.Buffer, d product.Data, id string) {
	fmt.Fprintf(b, "      <div id=\"view-details-%s\">\n", id)
	fmt.Fprintf(b, "        <h2 class=\"bg-m-title\">%s</h2>\n", esc(d.Title))
	b.WriteString("        <div class=\"bg-m-price\">\n")
	fmt.Fprintf(b, "          $%s\n", esc(d.Price))
	if d.OriginalPrice != "" {
		fmt.Fprintf(b, "          <span class=\"bg-old-price\" style=\"font-size:18px\">$%s</span>\n", esc(d.OriginalPrice))
	}
	if disc := d.DiscountPercent(); disc > 0 {
		fmt.Fprintf(b, "          <span class=\"bg-m-tag\">SAVE %d%%</span>\n", disc)
	}
	b.WriteString("        </div>\n")
	if len(d.Colors) > 0 {
		fmt.Fprintf(b, "        <span class=\"bg-lbl\">Color : <span id=\"col-name-%s\">%s</span></span>\n", id, esc(d.Colors[0]))
		b.WriteString("        <div class=\"bg-colors\">\n")
		for i, c := range d.Colors {
			active := ""
			if i == 0 {
				active = " active"
			}
			fmt.Fprintf(b, "          <div class=\"bg-color-opt%s\" style=\"background-color: %s\" onclick=\"selectColor_%s(this, '%s')\"></div>\n", active, attr(c), id, jsAttrArg(c))
		}
		b.WriteString("        </div>\n")
	}
	if d.InStock {
		b.WriteString("        <span class=\"bg-lbl\">Quantity</span>\n")
		b.WriteString("        <div class=\"bg-qty-wrap\">\n")
		fmt.Fprintf(b, "          <button class=\"bg-qty-btn\" onclick=\"updateQty_%s(-1)\">-</button>\n", id)
		fmt.Fprintf(b, "          <span id=\"qty-%s\" class=\"bg-qty-val\">1</span>\n", id)
		fmt.Fprintf(b, "          <button class=\"bg-qty-btn\" onclick=\"updateQty_%s(1)\">+</button>\n", id)
		b.WriteString("        </div>\n")
	}
	fmt.Fprintf(b, "        <button onclick=\"goToForm_%s()\" class=\"bg-m-btn\">%s</button>\n", id, esc(d.ModalCTALabel()))
	b.WriteString("        <div class=\"bg-m-desc\">\n")
	b.WriteString("          <span class=\"bg-lbl\" style=\"margin-bottom:5px\">Description</span>\n")
	fmt.Fprintf(b, "          %s\n", esc(d.Description))
	b.WriteString("        </div>\n")
	b.WriteString("      </div>\n")
}

func writeModalForm(b *bytes.Buffer, d product.Data, id string) {
	fmt.Fprintf(b, "      <div id=\"view-form-%s\" class=\"bg-form-view\">\n", id)
	fmt.Fprintf(b, "        <button class=\"bg-btn-back\" onclick=\"backToDetails_%s()\">&larr; Back to product</button>\n", id)
	b.WriteString("        <h3 class=\"bg-form-title\">Completa tu Pedido</h3>\n")
	b.WriteString("        <p class=\"bg-form-sub\">Envía tu pedido directamente por WhatsApp.</p>\n")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">Nombre Completo</label>\n")
	fmt.Fprintf(b, "          <input id=\"inp-name-%s\" class=\"bg-inp\" placeholder=\"Tu nombre\" />\n", id)
	b.WriteString("        </div>\n")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">País</label>\n")
	b.WriteString("          <input class=\"bg-inp readonly\" value=\"Ecuador\" readonly />\n")
	b.WriteString("        </div>\n")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">Ciudad</label>\n")
	fmt.Fprintf(b, "          <input id=\"inp-city-%s\" class=\"bg-inp\" placeholder=\"Ej: Quito, Guayaquil\" />\n", id)
	b.WriteString("        </div>\n")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">Dirección / Calles</label>\n")
	fmt.Fprintf(b, "          <input id=\"inp-address-%s\" class=\"bg-inp\" placeholder=\"Ej: Av. Amazonas y NNUU\" />\n", id)
	b.WriteString("        </div>\n")
	b.WriteString("        <div class=\"bg-inp-group\">\n")
	b.WriteString("          <label class=\"bg-inp-lbl\">Forma de Pago</label>\n")
	fmt.Fprintf(b, "          <select id=\"inp-payment-%s\" class=\"bg-inp\">\n", id)
	b.WriteString("            <option value=\"Pago contra entrega\">Pago contra entrega</option>\n")
	b.WriteString("            <option value=\"Transferencia bancaria\">Transferencia bancaria</option>\n")
	b.WriteString("            <option value=\"Retiro en tienda\">Retiro en tienda</option>\n")
	b.WriteString("          </select>\n")
	b.WriteString("        </div>\n")
	fmt.Fprintf(b, "        <button class=\"bg-btn-wa\" onclick=\"submitOrder_%s()\">Pedir por WhatsApp</button>\n", id)
	b.WriteString("      </div>\n")
}

func writeScript(b *bytes.Buffer, d product.Data, id string) {
	firstColor := ""
	if len(d.Colors) > 0 {
		firstColor = d.Colors[0]
	}
	b.WriteString("<script>\n")
	b.WriteString("  (function() {\n")
	b.WriteString("    var state = {\n")
	fmt.Fprintf(b, "      price: \"%s\",\n", jsString(d.Price))
	fmt.Fprintf(b, "      phone: \"%s\",\n", jsString(d.WhatsAppNumber))
	fmt.Fprintf(b, "      title: \"%s\",\n", jsString(d.Title))
	fmt.Fprintf(b, "      link: \"%s\",\n", jsString(d.BuyLink))
	fmt.Fprintf(b, "      color: \"%s\",\n", jsString(firstColor))
	b.WriteString("      qty: 1\n")
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.openModal_%s = function() { document.getElementById('modal-%s').classList.add('show'); };\n", id, id)
	fmt.Fprintf(b, "    window.closeModal_%s = function() {\n", id)
	fmt.Fprintf(b, "      document.getElementById('modal-%s').classList.remove('show');\n", id)
	fmt.Fprintf(b, "      backToDetails_%s();\n", id)
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.changeImg_%s = function(el, src) {\n", id)
	fmt.Fprintf(b, "      document.getElementById('main-img-%s').src = src;\n", id)
	fmt.Fprintf(b, "      var thumbs = document.querySelectorAll('#modal-%s .bg-thumb');\n", id)
	b.WriteString("      thumbs.forEach(function(t) { t.classList.remove('active'); });\n")
	b.WriteString("      el.classList.add('active');\n")
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.selectColor_%s = function(el, color) {\n", id)
	fmt.Fprintf(b, "      var opts = document.querySelectorAll('#modal-%s .bg-color-opt');\n", id)
	b.WriteString("      opts.forEach(function(o) { o.classList.remove('active'); });\n")
	b.WriteString("      el.classList.add('active');\n")
	b.WriteString("      state.color = color;\n")
	fmt.Fprintf(b, "      var nameEl = document.getElementById('col-name-%s');\n", id)
	b.WriteString("      if(nameEl) nameEl.innerText = color;\n")
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.updateQty_%s = function(change) {\n", id)
	fmt.Fprintf(b, "      var qEl = document.getElementById('qty-%s');\n", id)
	b.WriteString("      var current = parseInt(qEl.innerText);\n")
	b.WriteString("      var newVal = current + change;\n")
	b.WriteString("      if(newVal < 1) newVal = 1;\n")
	b.WriteString("      qEl.innerText = newVal;\n")
	b.WriteString("      state.qty = newVal;\n")
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.goToForm_%s = function() {\n", id)
	b.WriteString("      if(!state.phone) {\n")
	b.WriteString("         window.open(state.link, '_blank');\n")
	b.WriteString("         return;\n")
	b.WriteString("      }\n")
	fmt.Fprintf(b, "      document.getElementById('view-details-%s').style.display = 'none';\n", id)
	fmt.Fprintf(b, "      document.getElementById('view-form-%s').style.display = 'flex';\n", id)
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.backToDetails_%s = function() {\n", id)
	fmt.Fprintf(b, "      document.getElementById('view-form-%s').style.display = 'none';\n", id)
	fmt.Fprintf(b, "      document.getElementById('view-details-%s').style.display = 'block';\n", id)
	b.WriteString("    };\n\n")
	fmt.Fprintf(b, "    window.submitOrder_%s = function() {\n", id)
	fmt.Fprintf(b, "      var name = document.getElementById('inp-name-%s').value;\n", id)
	fmt.Fprintf(b, "      var city = document.getElementById('inp-city-%s').value;\n", id)
	fmt.Fprintf(b, "      var addr = document.getElementById('inp-address-%s').value;\n", id)
	fmt.Fprintf(b, "      var payment = document.getElementById('inp-payment-%s').value;\n", id)
	b.WriteString("\n      if(!name || !city) { alert('Por favor completa tu nombre y ciudad.'); return; }\n\n")
	b.WriteString("      var text = \"Hola, deseo pedir este producto: \" + state.title + \"\\n\" +\n")
	b.WriteString("                 \"Precio: $\" + state.price + \"\\n\" +\n")
	b.WriteString("                 \"Color: \" + state.color + \"\\n\" +\n")
	b.WriteString("                 \"Cantidad: \" + state.qty + \"\\n\\n\" +\n")
	b.WriteString("                 \"*Datos de envío:*\\n\" +\n")
	b.WriteString("                 \"Nombre: \" + name + \"\\n\" +\n")
	b.WriteString("                 \"País: Ecuador\\n\" +\n")
	b.WriteString("                 \"Ciudad: \" + city + \"\\n\" +\n")
	b.WriteString("                 \"Dirección: \" + addr + \"\\n\" +\n")
	b.WriteString("                 \"Método de Pago: \" + payment;\n\n")
	b.WriteString("      window.open(\"https://wa.me/\" + state.phone + \"?text=\" + encodeURIComponent(text), '_blank');\n")
	b.WriteString("    };\n")
	b.WriteString("  })();\n")
	b.WriteString("</script>\n")
}

func badgeClass(badge product.Badge) string {
	return strings.ReplaceAll(string(badge), "_", "-")
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// attr escapes a value used inside a double-quoted HTML attribute.
func attr(s string) string {
	return template.HTMLEscapeString(s)
}

var jsArgReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// jsAttrArg escapes a value embedded as a single-quoted JS string inside an
// HTML event attribute.
func jsAttrArg(s string) string {
	return template.HTMLEscapeString(jsArgReplacer.Replace(s))
}

var jsStringReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"<", `\u003c`,
)

// jsString escapes a value embedded in a double-quoted script literal.
func jsString(s string) string {
	return jsStringReplacer.Replace(s)
}
