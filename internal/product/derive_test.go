package product

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		original string
		want     int
	}{
		{"quarter off", "11.25", "15.00", 25},
		{"no original", "11.25", "", 0},
		{"unparsable original", "11.25", "n/a", 0},
		{"unparsable price", "free", "15.00", 0},
		{"zero original", "11.25", "0", 0},
		{"negative original", "11.25", "-5", 0},
		{"rounds up", "9.99", "15.00", 33},
		{"rounds half away", "8.50", "10.00", 15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Data{Price: c.price, OriginalPrice: c.original}
			assert.Equal(t, c.want, d.DiscountPercent())
		})
	}
}

func TestDerivedLabels(t *testing.T) {
	d := Default()
	assert.Equal(t, "HOT SALE", d.BadgeLabel())
	assert.Equal(t, "View Details", d.CardCTALabel())
	assert.Equal(t, "Comprar Ahora", d.ModalCTALabel())
	assert.True(t, d.PurchaseEnabled())
	assert.True(t, d.ShowDiscount())

	d.InStock = false
	assert.Equal(t, "Out of Stock", d.CardCTALabel())
	assert.Equal(t, "Sold Out", d.ModalCTALabel())
	assert.False(t, d.ShowDiscount())

	d.InStock = true
	d.ButtonText = ""
	assert.Equal(t, "Buy Now", d.ModalCTALabel())

	d.Badge = BadgeSoldOut
	assert.Equal(t, "Agotado", d.BadgeLabel())
	// ribbon choice never forces the stock state
	assert.True(t, d.PurchaseEnabled())
}

func TestPrimaryImageFallsBack(t *testing.T) {
	d := Data{}
	assert.Equal(t, PlaceholderImage, d.PrimaryImage())
	d.Images = []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	assert.Equal(t, "https://cdn.example.com/a.jpg", d.PrimaryImage())
}

func TestFromFormRoundTrip(t *testing.T) {
	d := Default()
	got := FromForm(d.Values())
	assert.Equal(t, d, got)
}

func TestFromFormNormalizes(t *testing.T) {
	form := url.Values{}
	form.Set("rating", "11")
	form.Set("badge", "mystery")
	form.Add("images", "  ")
	form.Add("images", "https://cdn.example.com/a.jpg")
	d := FromForm(form)
	assert.Equal(t, 5, d.Rating)
	assert.Equal(t, BadgeNone, d.Badge)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, d.Images)
	assert.False(t, d.InStock)
}
