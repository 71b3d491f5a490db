// Package catalog holds the immutable product catalog and its read-only
// query operations. The catalog is defined at process start and never
// mutated; every query returns a fresh slice so callers cannot reorder or
// edit the backing data.
package catalog

import "strings"

// Category groups products by preparation style.
type Category string

const (
	CategoryEspresso   Category = "espresso"
	CategoryLatte      Category = "latte"
	CategoryManualBrew Category = "manual-brew"
	CategorySignature  Category = "signature"

	// CategoryAll is the filter sentinel that matches every category.
	CategoryAll Category = "all"
)

// Serving distinguishes hot and iced drinks.
type Serving string

const (
	ServingHot Serving = "hot"
	ServingIce Serving = "ice"

	// ServingAll is the filter sentinel that matches every serving type.
	ServingAll Serving = "all"
)

// Product is one purchasable catalog record. Price is in whole Rupiah
// (minor currency units); there are no fractional prices in this domain.
type Product struct {
	ID          int
	Name        string
	Category    Category
	Serving     Serving
	Price       int64
	Description string
	Image       string
	ImageAlt    string
	Featured    bool
}

// Catalog is a static, ordered product list.
type Catalog struct {
	products []Product
}

// New builds a catalog from the given products, preserving order.
func New(products []Product) *Catalog {
	copied := make([]Product, len(products))
	copy(copied, products)
	return &Catalog{products: copied}
}

// All returns the full catalog in original order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID returns the product with the given id.
func (c *Catalog) ByID(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Featured returns featured products in original order.
func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Filter returns products matching both dimensions. The sentinel values
// ServingAll and CategoryAll short-circuit their dimension; otherwise both
// must match exactly.
func (c *Catalog) Filter(serving Serving, category Category) []Product {
	var out []Product
	for _, p := range c.products {
		if serving != ServingAll && p.Serving != serving {
			continue
		}
		if category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search returns products whose name contains the query, case-insensitively.
func (c *Catalog) Search(query string) []Product {
	return c.search(query, false)
}

// SearchWithDescription matches the query against name and description.
// The menu page searches descriptions while the shared search does not;
// the asymmetry is kept as-is rather than unified.
func (c *Catalog) SearchWithDescription(query string) []Product {
	return c.search(query, true)
}

func (c *Catalog) search(query string, includeDescription bool) []Product {
	return SearchIn(c.products, query, includeDescription)
}

// SearchIn narrows an already filtered product slice by query, preserving
// order. The match is a case-insensitive substring check against the name
// and, when includeDescription is set, the description.
func SearchIn(products []Product, query string, includeDescription bool) []Product {
	needle := strings.ToLower(query)
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
			continue
		}
		if includeDescription && strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}
