// Package message builds the WhatsApp order message and deep link. The text
// layout and its Spanish labels are fixed product copy shared verbatim with
// the exported widget script, so both sides produce identical URLs.
package message

import (
	"fmt"
	"strings"

	"bloggergen.org/cardgen-web/internal/product"
)

// DefaultPayment is the pre-selected payment method on the order form.
const DefaultPayment = "Pago contra entrega"

// PaymentMethods lists the accepted payment methods in display order.
func PaymentMethods() []string {
	return []string{DefaultPayment, "Transferencia bancaria", "Retiro en tienda"}
}

// Order carries the buyer selections collected by the widget order form.
type Order struct {
	Color    string
	Quantity int
	Name     string
	City     string
	Address  string
	Payment  string
}

// Text renders the order message.
func Text(d product.Data, o Order) string {
	qty := o.Quantity
	if qty < 1 {
		qty = 1
	}
	payment := o.Payment
	if payment == "" {
		payment = DefaultPayment
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hola, deseo pedir este producto: %s\n", d.Title)
	fmt.Fprintf(&b, "Precio: $%s\n", d.Price)
	fmt.Fprintf(&b, "Color: %s\n", o.Color)
	fmt.Fprintf(&b, "Cantidad: %d\n\n", qty)
	b.WriteString("*Datos de envío:*\n")
	fmt.Fprintf(&b, "Nombre: %s\n", o.Name)
	b.WriteString("País: Ecuador\n")
	fmt.Fprintf(&b, "Ciudad: %s\n", o.City)
	fmt.Fprintf(&b, "Dirección: %s\n", o.Address)
	fmt.Fprintf(&b, "Método de Pago: %s", payment)
	return b.String()
}

// DeepLink builds the wa.me URL that opens a chat pre-filled with Text.
func DeepLink(d product.Data, o Order) string {
	return "https://wa.me/" + d.WhatsAppNumber + "?text=" + EncodeComponent(Text(d, o))
}

// EncodeComponent percent-encodes s exactly like JavaScript's
// encodeURIComponent: everything except A-Za-z0-9 - _ . ! ~ * ' ( ) is
// escaped byte-wise as UTF-8. url.QueryEscape is close but not identical
// (it emits "+" for spaces and escapes the tilde set differently), and the
// inline widget script uses encodeURIComponent, so the sets must match.
func EncodeComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if componentUnreserved(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func componentUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
