// Package catalog exposes the static storefront product and category data.
package catalog

// Product is immutable catalog data. Prices are whole rupees.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Weight        string  `json:"weight"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	InStock       bool    `json:"in_stock"`
	Description   string  `json:"description"`
	Nutrition     string  `json:"nutrition,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

const featuredCount = 8

// All returns the catalog in display order. The returned slice is a copy.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Categories returns the category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryNames returns "All" followed by every category name.
func CategoryNames() []string {
	names := make([]string, 0, len(categories)+1)
	names = append(names, AllCategories)
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

func FindByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Featured returns the first eight catalog products.
func Featured() []Product {
	n := featuredCount
	if n > len(products) {
		n = len(products)
	}
	out := make([]Product, n)
	copy(out, products[:n])
	return out
}

// Related returns up to limit products sharing p's category, excluding p.
func Related(p Product, limit int) []Product {
	var out []Product
	for _, candidate := range products {
		if limit > 0 && len(out) >= limit {
			break
		}
		if candidate.Category == p.Category && candidate.ID != p.ID {
			out = append(out, candidate)
		}
	}
	return out
}

// DiscountPercent is the rounded saving against the original price, or 0.
func DiscountPercent(p Product) int64 {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	saving := p.OriginalPrice - p.Price
	// half-up of saving*100/original in integer arithmetic
	return (saving*200 + p.OriginalPrice) / (2 * p.OriginalPrice)
}
