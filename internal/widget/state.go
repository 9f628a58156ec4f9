// Package widget models the product card's interactive behavior as a pure
// state machine. Fragment handlers round-trip State through form values, so
// applying a sequence of events then rendering equals rendering the final
// state once.
package widget

import (
	"net/url"
	"strconv"
	"strings"

	"bloggergen.org/cardgen-web/internal/message"
	"bloggergen.org/cardgen-web/internal/product"
)

// View selects which panel the modal shows.
type View string

const (
	ViewDetails   View = "details"
	ViewOrderForm View = "form"
)

// State is the complete render state of one widget instance.
type State struct {
	Open       bool
	View       View
	ImageIndex int
	Color      string
	Quantity   int
	Name       string
	City       string
	Address    string
	Payment    string
}

// Effect is a side effect the host page must perform after a transition.
type Effect struct {
	Kind    EffectKind
	URL     string
	Message string
}

type EffectKind string

const (
	EffectNone     EffectKind = ""
	EffectNavigate EffectKind = "navigate"
	EffectWhatsApp EffectKind = "whatsapp"
	EffectAlert    EffectKind = "alert"
)

// Event names accepted by Apply.
const (
	EventOpen        = "open"
	EventClose       = "close"
	EventSelectImage = "image"
	EventSelectColor = "color"
	EventQuantity    = "qty"
	EventOpenForm    = "form"
	EventBack        = "back"
	EventSubmit      = "submit"
)

// Event is a user interaction. Value carries the event argument: an image
// index for image, a CSS color for color, a signed delta for qty.
type Event struct {
	Name  string
	Value string
}

// NewState returns the closed widget with default selections for d.
func NewState(d product.Data) State {
	s := State{
		View:     ViewDetails,
		Quantity: 1,
		Payment:  message.DefaultPayment,
	}
	if len(d.Colors) > 0 {
		s.Color = d.Colors[0]
	}
	return s
}

// Apply transitions s under ev. Unknown events and out-of-range arguments
// leave the state unchanged. Apply never fails.
func Apply(d product.Data, s State, ev Event) (State, Effect) {
	switch ev.Name {
	case EventOpen:
		s.Open = true
		s.View = ViewDetails
		s.ImageIndex = 0
		s.Color = ""
		if len(d.Colors) > 0 {
			s.Color = d.Colors[0]
		}
		if s.Quantity < 1 {
			s.Quantity = 1
		}
	case EventClose:
		s.Open = false
		s.View = ViewDetails
	case EventSelectImage:
		if i, err := strconv.Atoi(ev.Value); err == nil && i >= 0 && i < len(d.Images) {
			s.ImageIndex = i
		}
	case EventSelectColor:
		for _, c := range d.Colors {
			if c == ev.Value {
				s.Color = c
				break
			}
		}
	case EventQuantity:
		if !d.PurchaseEnabled() {
			break
		}
		if delta, err := strconv.Atoi(ev.Value); err == nil {
			s.Quantity += delta
		}
		if s.Quantity < 1 {
			s.Quantity = 1
		}
	case EventOpenForm:
		if !d.PurchaseEnabled() {
			break
		}
		if d.WhatsAppNumber == "" {
			return s, Effect{Kind: EffectNavigate, URL: d.BuyLink}
		}
		s.View = ViewOrderForm
	case EventBack:
		s.View = ViewDetails
	case EventSubmit:
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.City) == "" {
			return s, Effect{Kind: EffectAlert, Message: "Por favor completa tu nombre y ciudad."}
		}
		return s, Effect{Kind: EffectWhatsApp, URL: message.DeepLink(d, s.Order())}
	}
	return s, Effect{}
}

// Order converts the collected form fields into a message order.
func (s State) Order() message.Order {
	return message.Order{
		Color:    s.Color,
		Quantity: s.Quantity,
		Name:     s.Name,
		City:     s.City,
		Address:  s.Address,
		Payment:  s.Payment,
	}
}

// FromForm restores a State carried in form values, normalizing against d.
func FromForm(d product.Data, form url.Values) State {
	s := NewState(d)
	if form == nil {
		return s
	}
	s.Open = form.Get("w_open") != ""
	if View(form.Get("w_view")) == ViewOrderForm {
		s.View = ViewOrderForm
	}
	if i, err := strconv.Atoi(form.Get("w_img")); err == nil && i >= 0 && i < len(d.Images) {
		s.ImageIndex = i
	}
	if c := form.Get("w_color"); c != "" {
		for _, known := range d.Colors {
			if known == c {
				s.Color = c
				break
			}
		}
	}
	if q, err := strconv.Atoi(form.Get("w_qty")); err == nil && q >= 1 {
		s.Quantity = q
	}
	s.Name = strings.TrimSpace(form.Get("w_name"))
	s.City = strings.TrimSpace(form.Get("w_city"))
	s.Address = strings.TrimSpace(form.Get("w_address"))
	if p := form.Get("w_payment"); p != "" {
		for _, known := range message.PaymentMethods() {
			if known == p {
				s.Payment = p
				break
			}
		}
	}
	return s
}

// Values serializes s for the next fragment request.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Open {
		v.Set("w_open", "1")
	}
	v.Set("w_view", string(s.View))
	v.Set("w_img", strconv.Itoa(s.ImageIndex))
	v.Set("w_color", s.Color)
	v.Set("w_qty", strconv.Itoa(s.Quantity))
	v.Set("w_name", s.Name)
	v.Set("w_city", s.City)
	v.Set("w_address", s.Address)
	v.Set("w_payment", s.Payment)
	return v
}
