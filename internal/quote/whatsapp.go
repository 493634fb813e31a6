// Package quote builds WhatsApp deep links for product quote requests. This
// is a URL construction convention, not a protocol the portal owns: the link
// opens a pre-filled chat with the distributor's sales number.
package quote

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hafaksurgicals/portal/internal/api/metrics"
	"github.com/hafaksurgicals/portal/internal/core/domain"
)

// Builder composes wa.me links for a fixed sales number and public site URL.
type Builder struct {
	number  string
	siteURL string
}

// NewBuilder normalizes the configured number down to digits, the format
// wa.me expects.
func NewBuilder(number, siteURL string) *Builder {
	return &Builder{
		number:  digitsOnly(number),
		siteURL: strings.TrimRight(siteURL, "/"),
	}
}

// Link returns the deep link for a quote request on the given product.
func (b *Builder) Link(product domain.Equipment) string {
	metrics.QuoteLinksTotal.Inc()
	return "https://wa.me/" + b.number + "?text=" + url.QueryEscape(b.message(product))
}

func (b *Builder) message(product domain.Equipment) string {
	name := product.Name
	if name == "" {
		name = "Product Name"
	}
	brand := product.Brand
	if brand == "" {
		brand = "N/A"
	}
	productURL := fmt.Sprintf("%s/products/%s", b.siteURL, product.ID)

	return fmt.Sprintf(`Hello! I'm interested in getting a quote for this product:

*%s*
*Brand:* %s

*Product Link:* %s

Please provide me with more details and pricing information. Thank you!`, name, brand, productURL)
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
