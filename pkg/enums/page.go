package enums

import "fmt"

// Page identifies a storefront view.
type Page string

const (
	PageHome           Page = "home"
	PageProducts       Page = "products"
	PageProductDetails Page = "product-details"
	PageCart           Page = "cart"
	PageCheckout       Page = "checkout"
	PageOrderSuccess   Page = "order-success"
	PageProfile        Page = "profile"
	PageTrackOrder     Page = "track-order"
	PageAbout          Page = "about"
	PageContact        Page = "contact"
	PagePrivacy        Page = "privacy"
	PageTerms          Page = "terms"
	PageRefund         Page = "refund"
)

var validPages = []Page{
	PageHome,
	PageProducts,
	PageProductDetails,
	PageCart,
	PageCheckout,
	PageOrderSuccess,
	PageProfile,
	PageTrackOrder,
	PageAbout,
	PageContact,
	PagePrivacy,
	PageTerms,
	PageRefund,
}

// String implements fmt.Stringer.
func (p Page) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Page.
func (p Page) IsValid() bool {
	for _, candidate := range validPages {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePage converts raw input into a Page.
func ParsePage(value string) (Page, error) {
	for _, candidate := range validPages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid page %q", value)
}
