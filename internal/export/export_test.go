package export

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"bloggergen.org/cardgen-web/internal/product"
)

func parseSnippet(t *testing.T, snippet string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(snippet))
	require.NoError(t, err)
	return doc
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func countByClass(n *html.Node, class string) int {
	count := 0
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "class" {
				for _, c := range strings.Fields(a.Val) {
					if c == class {
						count++
					}
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countByClass(c, class)
	}
	return count
}

func TestNewInstanceID(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-z]{9}$`)
	a, b := NewInstanceID(), NewInstanceID()
	assert.Regexp(t, re, a)
	assert.Regexp(t, re, b)
	assert.NotEqual(t, a, b)
}

func TestRenderStructure(t *testing.T) {
	d := product.Default()
	d.Images = append(d.Images, "https://cdn.example.com/b.jpg")
	snippet := RenderWithID(d, "abc123xyz")
	doc := parseSnippet(t, snippet)

	require.NotNil(t, findByID(doc, "bg-widget-abc123xyz"))
	require.NotNil(t, findByID(doc, "modal-abc123xyz"))
	require.NotNil(t, findByID(doc, "view-details-abc123xyz"))
	require.NotNil(t, findByID(doc, "view-form-abc123xyz"))
	require.NotNil(t, findByID(doc, "main-img-abc123xyz"))

	assert.Equal(t, 2, countByClass(doc, "bg-thumb"))
	assert.Equal(t, 3, countByClass(doc, "bg-color-opt"))
	assert.Equal(t, 1, countByClass(doc, "bg-qty-wrap"))

	assert.Contains(t, snippet, "fonts.googleapis.com/css2?family=Roboto")
	assert.Contains(t, snippet, ">HOT SALE</span>")
	assert.Contains(t, snippet, "-25%")
	assert.Contains(t, snippet, "SAVE 25%")
	assert.Contains(t, snippet, ">View Details</button>")
	assert.Contains(t, snippet, ">Comprar Ahora</button>")
	assert.Contains(t, snippet, "★★★★★")
}

func TestRenderNamespacesScript(t *testing.T) {
	snippet := RenderWithID(product.Default(), "abc123xyz")
	for _, fn := range []string{"openModal", "closeModal", "changeImg", "selectColor", "updateQty", "goToForm", "backToDetails", "submitOrder"} {
		assert.Contains(t, snippet, "window."+fn+"_abc123xyz = function")
	}
	assert.Contains(t, snippet, `phone: "1234567890"`)
	assert.Contains(t, snippet, `color: "#3b82f6"`)
	assert.Contains(t, snippet, "https://wa.me/")
	assert.Contains(t, snippet, "encodeURIComponent(text)")
	assert.Contains(t, snippet, "Por favor completa tu nombre y ciudad.")
}

func TestRenderSingleImageHasNoThumbs(t *testing.T) {
	d := product.Default()
	snippet := RenderWithID(d, "abc123xyz")
	assert.Equal(t, 0, countByClass(parseSnippet(t, snippet), "bg-thumb"))
}

func TestRenderOutOfStock(t *testing.T) {
	d := product.Default()
	d.InStock = false
	snippet := RenderWithID(d, "abc123xyz")

	assert.Contains(t, snippet, ">SOLD OUT</span>")
	assert.Contains(t, snippet, ">Out of Stock</button>")
	assert.Contains(t, snippet, ">Sold Out</button>")
	// discount pill suppressed, but the modal still shows the saving tag
	assert.NotContains(t, snippet, `"bg-badge sale"`)
	assert.Equal(t, 0, countByClass(parseSnippet(t, snippet), "bg-qty-wrap"))
	assert.Contains(t, snippet, "pointer-events: none")
}

func TestRenderNoColorsOmitsSwatches(t *testing.T) {
	d := product.Default()
	d.Colors = nil
	snippet := RenderWithID(d, "abc123xyz")
	assert.Equal(t, 0, countByClass(parseSnippet(t, snippet), "bg-color-opt"))
	assert.Contains(t, snippet, `color: ""`)
}

func TestRenderEscapesValues(t *testing.T) {
	d := product.Default()
	d.Title = `Solar <b>"Light"</b> & Co`
	snippet := RenderWithID(d, "abc123xyz")
	assert.NotContains(t, snippet, "<b>\"Light\"")
	assert.Contains(t, snippet, "&lt;b&gt;")
	// script literal stays valid and cannot close the script tag early
	assert.Contains(t, snippet, `title: "Solar \u003cb>\"Light\"\u003c/b> & Co"`)
}

func TestRenderPlaceholderImage(t *testing.T) {
	d := product.Default()
	d.Images = nil
	snippet := RenderWithID(d, "abc123xyz")
	assert.Contains(t, snippet, product.PlaceholderImage)
}
