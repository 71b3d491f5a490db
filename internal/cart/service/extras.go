package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/sableroast/storefront/internal/cart/domain"
	"github.com/sableroast/storefront/internal/catalog"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/storage"
)

const maxSuggestions = 3

// Stats summarizes the cart for display. Prices are in minor currency units.
type Stats struct {
	TotalItems    int
	UniqueItems   int
	Subtotal      int64
	AveragePrice  int64
	MostExpensive domain.Line
	Cheapest      domain.Line
}

// Stats computes cart statistics. An empty cart yields a CartEmpty error.
// The average unit price is the mean of line prices rounded half up, not
// weighted by quantity.
func (s *CartService) Stats(ctx context.Context) (Stats, error) {
	lines, err := s.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	if len(lines) == 0 {
		return Stats{}, errors.New(errors.CodeCartEmpty, "cart is empty")
	}

	stats := Stats{
		TotalItems:    domain.TotalQuantity(lines),
		UniqueItems:   len(lines),
		Subtotal:      domain.SubtotalOf(lines),
		MostExpensive: lines[0],
		Cheapest:      lines[0],
	}

	var priceSum int64
	for _, line := range lines {
		priceSum += line.Price
		if line.Price > stats.MostExpensive.Price {
			stats.MostExpensive = line
		}
		if line.Price < stats.Cheapest.Price {
			stats.Cheapest = line
		}
	}
	n := int64(len(lines))
	stats.AveragePrice = (priceSum + n/2) / n

	return stats, nil
}

// Discount codes accepted at checkout.
var discountCodes = map[string]domain.Discount{
	"WELCOME10": {Code: "WELCOME10", Description: "10% off", Percent: 10},
	"COFFEE20":  {Code: "COFFEE20", Description: "20% off", Percent: 20},
	"FREESHIP":  {Code: "FREESHIP", Description: "Free shipping", FreeShipping: true},
}

// ApplyDiscount resolves a promotion code. Codes are matched case
// insensitively; unknown codes yield a DiscountInvalid error.
func (s *CartService) ApplyDiscount(code string) (domain.Discount, error) {
	discount, ok := discountCodes[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.Discount{}, errors.New(errors.CodeDiscountInvalid, "invalid promo code")
	}
	return discount, nil
}

// Suggestions returns up to three catalog products that share a category
// with a cart line but are not themselves in the cart. An empty cart yields
// no suggestions.
func (s *CartService) Suggestions(ctx context.Context) ([]catalog.Product, error) {
	if s.catalog == nil {
		return nil, fmt.Errorf("catalog is not configured")
	}
	lines, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	inCart := make(map[int]bool, len(lines))
	categories := make(map[catalog.Category]bool)
	for _, line := range lines {
		inCart[line.ProductID] = true
		if product, ok := s.catalog.ByID(line.ProductID); ok {
			categories[product.Category] = true
		}
	}

	var suggestions []catalog.Product
	for _, product := range s.catalog.All() {
		if len(suggestions) == maxSuggestions {
			break
		}
		if categories[product.Category] && !inCart[product.ID] {
			suggestions = append(suggestions, product)
		}
	}
	return suggestions, nil
}

// SaveForLater snapshots the current cart into the single saved-cart slot,
// overwriting any previous snapshot. An empty cart yields a CartEmpty error.
func (s *CartService) SaveForLater(ctx context.Context) error {
	if s.stores.SavedCart == nil {
		return fmt.Errorf("saved cart store is not configured")
	}
	lines, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errors.New(errors.CodeCartEmpty, "cart is empty")
	}

	saved := domain.SavedCart{Lines: lines, SavedAt: s.clock()}
	if err := s.stores.SavedCart.PutSavedCart(ctx, saved); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// RestoreSaved replaces the cart with the saved snapshot and returns the
// restored lines. A missing snapshot yields a NoSavedCart error.
func (s *CartService) RestoreSaved(ctx context.Context) ([]domain.Line, error) {
	if s.stores.SavedCart == nil {
		return nil, fmt.Errorf("saved cart store is not configured")
	}
	saved, err := s.stores.SavedCart.GetSavedCart(ctx)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return nil, errors.New(errors.CodeNoSavedCart, "no saved cart")
		}
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	if err := s.stores.Cart.PutCart(ctx, saved.Lines); err != nil {
		return nil, fmt.Errorf("restore cart: %w", err)
	}
	return saved.Lines, nil
}
