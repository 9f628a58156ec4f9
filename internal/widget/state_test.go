package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloggergen.org/cardgen-web/internal/product"
)

func TestOpenResetsSelections(t *testing.T) {
	d := product.Default()
	d.Images = append(d.Images, "https://cdn.example.com/b.jpg")
	s := NewState(d)
	s.ImageIndex = 1
	s.Color = d.Colors[2]
	s.Quantity = 4

	s, eff := Apply(d, s, Event{Name: EventOpen})
	assert.Equal(t, EffectNone, eff.Kind)
	assert.True(t, s.Open)
	assert.Equal(t, ViewDetails, s.View)
	assert.Equal(t, 0, s.ImageIndex)
	assert.Equal(t, d.Colors[0], s.Color)
	// quantity survives reopening
	assert.Equal(t, 4, s.Quantity)
}

func TestCloseReturnsToDetails(t *testing.T) {
	d := product.Default()
	s := NewState(d)
	s, _ = Apply(d, s, Event{Name: EventOpen})
	s, _ = Apply(d, s, Event{Name: EventOpenForm})
	assert.Equal(t, ViewOrderForm, s.View)

	s, _ = Apply(d, s, Event{Name: EventClose})
	assert.False(t, s.Open)
	assert.Equal(t, ViewDetails, s.View)
}

func TestSelectImageIgnoresOutOfRange(t *testing.T) {
	d := product.Default()
	d.Images = []string{"a", "b", "c"}
	s := NewState(d)
	s, _ = Apply(d, s, Event{Name: EventSelectImage, Value: "2"})
	assert.Equal(t, 2, s.ImageIndex)
	s, _ = Apply(d, s, Event{Name: EventSelectImage, Value: "7"})
	assert.Equal(t, 2, s.ImageIndex)
	s, _ = Apply(d, s, Event{Name: EventSelectImage, Value: "-1"})
	assert.Equal(t, 2, s.ImageIndex)
	s, _ = Apply(d, s, Event{Name: EventSelectImage, Value: "x"})
	assert.Equal(t, 2, s.ImageIndex)
}

func TestSelectColorRequiresKnownColor(t *testing.T) {
	d := product.Default()
	s := NewState(d)
	s, _ = Apply(d, s, Event{Name: EventSelectColor, Value: d.Colors[1]})
	assert.Equal(t, d.Colors[1], s.Color)
	s, _ = Apply(d, s, Event{Name: EventSelectColor, Value: "#bada55"})
	assert.Equal(t, d.Colors[1], s.Color)
}

func TestQuantityClampsAtOne(t *testing.T) {
	d := product.Default()
	s := NewState(d)
	s, _ = Apply(d, s, Event{Name: EventQuantity, Value: "1"})
	s, _ = Apply(d, s, Event{Name: EventQuantity, Value: "1"})
	assert.Equal(t, 3, s.Quantity)
	s, _ = Apply(d, s, Event{Name: EventQuantity, Value: "-10"})
	assert.Equal(t, 1, s.Quantity)

	d.InStock = false
	s, _ = Apply(d, s, Event{Name: EventQuantity, Value: "5"})
	assert.Equal(t, 1, s.Quantity)
}

func TestOpenFormGating(t *testing.T) {
	d := product.Default()
	s := NewState(d)

	s, eff := Apply(d, s, Event{Name: EventOpenForm})
	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, ViewOrderForm, s.View)

	d.WhatsAppNumber = ""
	d.BuyLink = "https://shop.example.com/p/1"
	s2 := NewState(d)
	s2, eff = Apply(d, s2, Event{Name: EventOpenForm})
	assert.Equal(t, EffectNavigate, eff.Kind)
	assert.Equal(t, "https://shop.example.com/p/1", eff.URL)
	assert.Equal(t, ViewDetails, s2.View)

	d = product.Default()
	d.InStock = false
	s3 := NewState(d)
	s3, eff = Apply(d, s3, Event{Name: EventOpenForm})
	assert.Equal(t, EffectNone, eff.Kind)
	assert.Equal(t, ViewDetails, s3.View)
}

func TestBackKeepsSelections(t *testing.T) {
	d := product.Default()
	s := NewState(d)
	s, _ = Apply(d, s, Event{Name: EventSelectColor, Value: d.Colors[2]})
	s, _ = Apply(d, s, Event{Name: EventQuantity, Value: "2"})
	s, _ = Apply(d, s, Event{Name: EventOpenForm})
	s, _ = Apply(d, s, Event{Name: EventBack})
	assert.Equal(t, ViewDetails, s.View)
	assert.Equal(t, d.Colors[2], s.Color)
	assert.Equal(t, 3, s.Quantity)
}

func TestSubmitValidatesNameAndCity(t *testing.T) {
	d := product.Default()
	s := NewState(d)
	s.View = ViewOrderForm

	_, eff := Apply(d, s, Event{Name: EventSubmit})
	assert.Equal(t, EffectAlert, eff.Kind)
	assert.Equal(t, "Por favor completa tu nombre y ciudad.", eff.Message)

	s.Name = "Ana"
	s.City = "  "
	_, eff = Apply(d, s, Event{Name: EventSubmit})
	assert.Equal(t, EffectAlert, eff.Kind)

	s.City = "Quito"
	_, eff = Apply(d, s, Event{Name: EventSubmit})
	assert.Equal(t, EffectWhatsApp, eff.Kind)
	assert.True(t, strings.HasPrefix(eff.URL, "https://wa.me/1234567890?text="))
	assert.Contains(t, eff.URL, "Ana")
}

func TestUnknownEventIsNoop(t *testing.T) {
	d := product.Default()
	s := NewState(d)
	got, eff := Apply(d, s, Event{Name: "explode"})
	assert.Equal(t, s, got)
	assert.Equal(t, EffectNone, eff.Kind)
}

func TestStateFormRoundTrip(t *testing.T) {
	d := product.Default()
	d.Images = append(d.Images, "https://cdn.example.com/b.jpg")
	s := NewState(d)
	s, _ = Apply(d, s, Event{Name: EventOpen})
	s, _ = Apply(d, s, Event{Name: EventSelectImage, Value: "1"})
	s, _ = Apply(d, s, Event{Name: EventSelectColor, Value: d.Colors[1]})
	s, _ = Apply(d, s, Event{Name: EventOpenForm})
	s.Name = "Ana"
	s.City = "Quito"

	got := FromForm(d, s.Values())
	assert.Equal(t, s, got)
}
