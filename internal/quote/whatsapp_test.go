package quote

import (
	"net/url"
	"strings"
	"testing"

	"github.com/hafaksurgicals/portal/internal/core/domain"
)

func TestLink_NumberNormalizedToDigits(t *testing.T) {
	b := NewBuilder("+234 803-376-0003", "https://hafaksurgicals.com")

	link := b.Link(domain.Equipment{ID: "e1", Name: "Patient Monitor"})
	if !strings.HasPrefix(link, "https://wa.me/2348033760003?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
}

func TestLink_MessageEncodedAndComplete(t *testing.T) {
	b := NewBuilder("2348033760003", "https://hafaksurgicals.com/")

	link := b.Link(domain.Equipment{ID: "abc123", Name: "Patient Monitor", Brand: "Philips"})

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	msg := u.Query().Get("text")
	for _, want := range []string{
		"*Patient Monitor*",
		"*Brand:* Philips",
		"*Product Link:* https://hafaksurgicals.com/products/abc123",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(link[strings.Index(link, "?text=")+6:], " ") {
		t.Error("message not URL encoded")
	}
}

func TestLink_Fallbacks(t *testing.T) {
	b := NewBuilder("2348033760003", "https://hafaksurgicals.com")

	link := b.Link(domain.Equipment{ID: "e1"})
	u, _ := url.Parse(link)
	msg := u.Query().Get("text")

	if !strings.Contains(msg, "*Product Name*") {
		t.Errorf("missing name fallback:\n%s", msg)
	}
	if !strings.Contains(msg, "*Brand:* N/A") {
		t.Errorf("missing brand fallback:\n%s", msg)
	}
}
