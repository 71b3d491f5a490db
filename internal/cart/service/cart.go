// Package service implements cart operations over the storage interfaces.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sableroast/storefront/internal/cart/domain"
	"github.com/sableroast/storefront/internal/catalog"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/storage"
)

// Stores groups all cart-related storage interfaces.
type Stores struct {
	Cart      storage.CartStore
	SavedCart storage.SavedCartStore
}

// CartService mutates and queries the cart. Every mutation loads the full
// line list, applies the change, and writes the whole list back.
type CartService struct {
	stores  Stores
	catalog *catalog.Catalog
	clock   func() time.Time
}

// NewCartService creates a CartService with default dependencies.
func NewCartService(stores Stores, cat *catalog.Catalog) *CartService {
	return &CartService{
		stores:  stores,
		catalog: cat,
		clock:   time.Now,
	}
}

// Get returns the current cart lines. A missing record reads as an empty
// cart.
func (s *CartService) Get(ctx context.Context) ([]domain.Line, error) {
	if s.stores.Cart == nil {
		return nil, fmt.Errorf("cart store is not configured")
	}
	lines, err := s.stores.Cart.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return lines, nil
}

// Add puts one unit of the product in the cart. A product already present
// gets its quantity incremented; a new product gets a line with name, price,
// and image snapshotted from the catalog. Returns the resulting line.
func (s *CartService) Add(ctx context.Context, productID int) (domain.Line, error) {
	if s.catalog == nil {
		return domain.Line{}, fmt.Errorf("catalog is not configured")
	}
	product, ok := s.catalog.ByID(productID)
	if !ok {
		return domain.Line{}, errors.New(errors.CodeProductNotFound, "product not found")
	}

	lines, err := s.Get(ctx)
	if err != nil {
		return domain.Line{}, err
	}

	idx := domain.FindLine(lines, productID)
	if idx >= 0 {
		lines[idx].Quantity++
	} else {
		lines = append(lines, domain.Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
		idx = len(lines) - 1
	}

	if err := s.stores.Cart.PutCart(ctx, lines); err != nil {
		return domain.Line{}, fmt.Errorf("save cart: %w", err)
	}
	return lines[idx], nil
}

// UpdateQuantity sets the quantity for a product's line. A quantity below 1
// removes the line. Updating a product that is not in the cart leaves the
// lines unchanged but still writes the cart back.
func (s *CartService) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		_, _, err := s.Remove(ctx, productID)
		return err
	}

	lines, err := s.Get(ctx)
	if err != nil {
		return err
	}

	idx := domain.FindLine(lines, productID)
	if idx >= 0 {
		lines[idx].Quantity = quantity
	}

	if err := s.stores.Cart.PutCart(ctx, lines); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Remove deletes the line for a product. It returns the removed line and
// whether one was present. Removing an absent product leaves the lines
// unchanged but still writes the cart back.
func (s *CartService) Remove(ctx context.Context, productID int) (domain.Line, bool, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return domain.Line{}, false, err
	}

	var removed domain.Line
	var found bool
	if idx := domain.FindLine(lines, productID); idx >= 0 {
		removed = lines[idx]
		found = true
		lines = append(lines[:idx], lines[idx+1:]...)
	}

	if err := s.stores.Cart.PutCart(ctx, lines); err != nil {
		return domain.Line{}, false, fmt.Errorf("save cart: %w", err)
	}
	return removed, found, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	if s.stores.Cart == nil {
		return fmt.Errorf("cart store is not configured")
	}
	if err := s.stores.Cart.DeleteCart(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// TotalQuantity returns the number of units across all lines.
func (s *CartService) TotalQuantity(ctx context.Context) (int, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return domain.TotalQuantity(lines), nil
}

// Subtotal returns the cart subtotal in minor currency units.
func (s *CartService) Subtotal(ctx context.Context) (int64, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return domain.SubtotalOf(lines), nil
}

// Summary returns the full order summary for the current cart.
func (s *CartService) Summary(ctx context.Context) (domain.Summary, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.ComputeSummary(lines), nil
}

// Contains reports whether the product has a line in the cart.
func (s *CartService) Contains(ctx context.Context, productID int) (bool, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return domain.FindLine(lines, productID) >= 0, nil
}

// Quantity returns the quantity for a product's line, or zero.
func (s *CartService) Quantity(ctx context.Context, productID int) (int, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	idx := domain.FindLine(lines, productID)
	if idx < 0 {
		return 0, nil
	}
	return lines[idx].Quantity, nil
}
