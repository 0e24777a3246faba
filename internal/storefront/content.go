package storefront

import "github.com/naturesnacks/snackstore/pkg/enums"

// Section is one heading and its paragraphs on a static page.
type Section struct {
	Heading string   `json:"heading,omitempty"`
	Body    []string `json:"body"`
}

// Content is the copy for informational pages.
type Content struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

const (
	SupportPhone   = "+91 98765 43210"
	SupportEmail   = "support@naturesnacks.com"
	SupportAddress = "123 Organic Street, Green Valley, Mumbai 400001"
)

var staticPages = map[enums.Page]Content{
	enums.PageProfile: {
		Title: "My Account",
		Sections: []Section{
			{Body: []string{"Account features are coming soon. Your orders are confirmed by email."}},
		},
	},
	enums.PageTrackOrder: {
		Title: "Track Your Order",
		Sections: []Section{
			{Heading: "Order Status", Body: []string{
				"Enter the order ID from your confirmation to see where your snacks are.",
			}},
		},
	},
	enums.PageAbout: {
		Title: "About NatureSnacks",
		Sections: []Section{
			{Body: []string{
				"NatureSnacks brings premium nuts, dried fruits, seeds and wholesome bites from trusted farms to your door.",
				"Every batch is hand-picked, quality checked and packed fresh with no artificial preservatives.",
				"We believe healthy snacking should be simple, delicious and affordable.",
			}},
		},
	},
	enums.PageContact: {
		Title: "Contact Us",
		Sections: []Section{
			{Heading: "Phone", Body: []string{SupportPhone}},
			{Heading: "Email", Body: []string{SupportEmail}},
			{Heading: "Address", Body: []string{SupportAddress}},
		},
	},
	enums.PagePrivacy: {
		Title: "Privacy Policy",
		Sections: []Section{
			{Heading: "Information we collect", Body: []string{
				"We collect the name, contact details and delivery address you enter at checkout to fulfil your order.",
			}},
			{Heading: "Payments", Body: []string{
				"Card and UPI details are handled by our payment provider and never reach our servers.",
			}},
		},
	},
	enums.PageTerms: {
		Title: "Terms & Conditions",
		Sections: []Section{
			{Body: []string{
				"Prices are in Indian Rupees and include applicable GST at checkout.",
				"Orders above ₹499 ship free. A ₹49 delivery fee applies to smaller orders.",
			}},
		},
	},
	enums.PageRefund: {
		Title: "Refund Policy",
		Sections: []Section{
			{Body: []string{
				"If a product arrives damaged or incorrect, contact us within 7 days of delivery for a replacement or refund.",
				"Refunds are issued to the original payment method within 5-7 business days.",
			}},
		},
	},
}

// StaticContent returns the copy for an informational page.
func StaticContent(page enums.Page) (Content, bool) {
	c, ok := staticPages[page]
	return c, ok
}
