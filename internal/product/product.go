package product

import (
	"net/url"
	"strconv"
	"strings"
)

// Badge identifies the promotional ribbon shown on the card image.
type Badge string

const (
	BadgeNone        Badge = "none"
	BadgeHot         Badge = "hot"
	BadgeBlackFriday Badge = "black_friday"
	BadgeComingSoon  Badge = "coming_soon"
	BadgePreOrder    Badge = "pre_order"
	BadgeSoldOut     Badge = "sold_out"
)

// PlaceholderImage is used when a product has no images yet.
const PlaceholderImage = "https://picsum.photos/400/400"

// Data is the merchant-authored product record. Prices are kept as decimal
// strings so the widget renders exactly what was typed.
type Data struct {
	Title          string
	Category       string
	Price          string
	OriginalPrice  string
	Description    string
	Images         []string
	BuyLink        string
	ButtonText     string
	WhatsAppNumber string
	Rating         int
	Badge          Badge
	ShowStars      bool
	Colors         []string
	InStock        bool
}

// Default returns the sample product seeded into a fresh editor session.
func Default() Data {
	return Data{
		Title:          "Ambiental Solar Light",
		Category:       "Home & Garden",
		Price:          "11.25",
		OriginalPrice:  "15.00",
		Description:    "Illuminate your space with Ambiental Solar. Experience the magic of clean and sustainable energy for your outdoors. Create warm and cozy environments without energy costs.",
		Images:         []string{PlaceholderImage},
		BuyLink:        "#",
		ButtonText:     "Comprar Ahora",
		WhatsAppNumber: "1234567890",
		Rating:         5,
		Badge:          BadgeHot,
		ShowStars:      true,
		Colors:         []string{"#3b82f6", "#ef4444", "#64748b"},
		InStock:        true,
	}
}

// ParseBadge normalizes a form value to a known badge, defaulting to none.
func ParseBadge(s string) Badge {
	switch Badge(strings.TrimSpace(strings.ToLower(s))) {
	case BadgeHot:
		return BadgeHot
	case BadgeBlackFriday:
		return BadgeBlackFriday
	case BadgeComingSoon:
		return BadgeComingSoon
	case BadgePreOrder:
		return BadgePreOrder
	case BadgeSoldOut:
		return BadgeSoldOut
	default:
		return BadgeNone
	}
}

// FromForm binds an editor form to a Data. Absent keys fall back to zero
// values; rating is clamped to 1..5 and unknown badges normalize to none.
func FromForm(form url.Values) Data {
	d := Data{
		Title:          strings.TrimSpace(form.Get("title")),
		Category:       strings.TrimSpace(form.Get("category")),
		Price:          strings.TrimSpace(form.Get("price")),
		OriginalPrice:  strings.TrimSpace(form.Get("original_price")),
		Description:    strings.TrimSpace(form.Get("description")),
		BuyLink:        strings.TrimSpace(form.Get("buy_link")),
		ButtonText:     strings.TrimSpace(form.Get("button_text")),
		WhatsAppNumber: strings.TrimSpace(form.Get("whatsapp")),
		Rating:         clampInt(atoiOr(form.Get("rating"), 5), 1, 5),
		Badge:          ParseBadge(form.Get("badge")),
		ShowStars:      form.Get("show_stars") != "",
		InStock:        form.Get("in_stock") != "",
	}
	for _, img := range form["images"] {
		if img = strings.TrimSpace(img); img != "" {
			d.Images = append(d.Images, img)
		}
	}
	for _, c := range form["colors"] {
		if c = strings.TrimSpace(c); c != "" {
			d.Colors = append(d.Colors, c)
		}
	}
	return d
}

// Values round-trips a Data back into form values so stateless fragment
// endpoints can carry the full record between requests.
func (d Data) Values() url.Values {
	v := url.Values{}
	v.Set("title", d.Title)
	v.Set("category", d.Category)
	v.Set("price", d.Price)
	v.Set("original_price", d.OriginalPrice)
	v.Set("description", d.Description)
	v.Set("buy_link", d.BuyLink)
	v.Set("button_text", d.ButtonText)
	v.Set("whatsapp", d.WhatsAppNumber)
	v.Set("rating", strconv.Itoa(d.Rating))
	v.Set("badge", string(d.Badge))
	if d.ShowStars {
		v.Set("show_stars", "1")
	}
	if d.InStock {
		v.Set("in_stock", "1")
	}
	for _, img := range d.Images {
		v.Add("images", img)
	}
	for _, c := range d.Colors {
		v.Add("colors", c)
	}
	return v
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
