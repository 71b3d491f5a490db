package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects a product ordering.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
)

// SortProducts returns a sorted copy of products. The input is never
// mutated. Name orderings are locale-aware; unknown orders (including
// SortDefault) preserve the input order. All sorts are stable, so ties keep
// their relative input order.
//
// Safe for concurrent use: collate.Collator mutates internal state on every
// comparison, so each call builds its own.
func SortProducts(products []Product, order SortOrder) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch order {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNameAsc:
		collator := collate.New(language.Indonesian)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNameDesc:
		collator := collate.New(language.Indonesian)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	}

	return sorted
}
