package product

import (
	"math"

	"bloggergen.org/cardgen-web/internal/format"
)

// DiscountPercent computes the rounded percentage saved against the original
// price. It returns 0 whenever the original price is absent, either price
// fails to parse, or the original price is not positive.
func (d Data) DiscountPercent() int {
	if d.OriginalPrice == "" {
		return 0
	}
	orig, ok := format.ParseDecimal(d.OriginalPrice)
	if !ok || orig <= 0 {
		return 0
	}
	price, ok := format.ParseDecimal(d.Price)
	if !ok {
		return 0
	}
	return int(math.Round((orig - price) / orig * 100))
}

// PrimaryImage returns the first product image, or the placeholder.
func (d Data) PrimaryImage() string {
	if len(d.Images) > 0 {
		return d.Images[0]
	}
	return PlaceholderImage
}

// BadgeLabel is the fixed ribbon text for the configured badge.
func (d Data) BadgeLabel() string {
	switch d.Badge {
	case BadgeHot:
		return "HOT SALE"
	case BadgeBlackFriday:
		return "Black Friday"
	case BadgeComingSoon:
		return "Coming Soon"
	case BadgePreOrder:
		return "Reservarlo ahora"
	case BadgeSoldOut:
		return "Agotado"
	default:
		return ""
	}
}

// CardCTALabel is the call-to-action on the compact card.
func (d Data) CardCTALabel() string {
	if d.InStock {
		return "View Details"
	}
	return "Out of Stock"
}

// ModalCTALabel is the call-to-action inside the detail modal.
func (d Data) ModalCTALabel() string {
	if !d.InStock {
		return "Sold Out"
	}
	if d.ButtonText != "" {
		return d.ButtonText
	}
	return "Buy Now"
}

// PurchaseEnabled gates the order form, quantity stepper, and CTA state.
// Badge and stock are deliberately independent: a sold_out ribbon on an
// in-stock product stays purchasable.
func (d Data) PurchaseEnabled() bool {
	return d.InStock
}

// ShowDiscount reports whether the card should carry the discount pill.
func (d Data) ShowDiscount() bool {
	return d.InStock && d.DiscountPercent() > 0
}
