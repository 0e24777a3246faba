package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/naturesnacks/snackstore/pkg/enums"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	AllCategories   = "All"
	DefaultMinPrice = int64(0)
	DefaultMaxPrice = int64(1000)
)

// ListInput captures the product listing filters. Nil price bounds use the defaults.
type ListInput struct {
	Query    string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

// ListResult echoes the applied filters alongside the visible products.
type ListResult struct {
	Products []Product     `json:"products"`
	Query    string        `json:"query,omitempty"`
	Category string        `json:"category"`
	MinPrice int64         `json:"min_price"`
	MaxPrice int64         `json:"max_price"`
	Sort     enums.SortKey `json:"sort"`
	Total    int           `json:"total"`
}

var (
	nameCollatorMu sync.Mutex
	nameCollator   = collate.New(language.English, collate.IgnoreCase)
)

// List filters the catalog by free text, category and price range, then sorts it.
// Unknown sort keys keep catalog order.
func List(in ListInput) ListResult {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = AllCategories
	}
	low, high := DefaultMinPrice, DefaultMaxPrice
	if in.MinPrice != nil {
		low = *in.MinPrice
	}
	if in.MaxPrice != nil {
		high = *in.MaxPrice
	}
	sortKey, err := enums.ParseSortKey(strings.TrimSpace(in.Sort))
	if err != nil {
		sortKey = enums.SortFeatured
	}

	query := strings.ToLower(strings.TrimSpace(in.Query))
	visible := make([]Product, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		if p.Price < low || p.Price > high {
			continue
		}
		visible = append(visible, p)
	}

	sortProducts(visible, sortKey)

	return ListResult{
		Products: visible,
		Query:    strings.TrimSpace(in.Query),
		Category: category,
		MinPrice: low,
		MaxPrice: high,
		Sort:     sortKey,
		Total:    len(visible),
	}
}

func matchesQuery(p Product, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Description), lowered) ||
		strings.Contains(strings.ToLower(p.Category), lowered)
}

func sortProducts(list []Product, key enums.SortKey) {
	switch key {
	case enums.SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case enums.SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case enums.SortRating:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
	case enums.SortName:
		// collate.Collator keeps internal buffers and is not safe for concurrent use
		nameCollatorMu.Lock()
		defer nameCollatorMu.Unlock()
		sort.SliceStable(list, func(i, j int) bool {
			return nameCollator.CompareString(list[i].Name, list[j].Name) < 0
		})
	}
}
