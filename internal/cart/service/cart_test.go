package service

import (
	"context"
	"testing"
	"time"

	"github.com/sableroast/storefront/internal/cart/domain"
	"github.com/sableroast/storefront/internal/catalog"
	"github.com/sableroast/storefront/internal/platform/errors"
	"github.com/sableroast/storefront/internal/storage"
	"github.com/sableroast/storefront/internal/storage/memory"
)

// countingCartStore records cart write-backs so tests can assert the
// read-modify-write cycle completes even when the lines did not change.
type countingCartStore struct {
	storage.CartStore
	puts int
}

func (c *countingCartStore) PutCart(ctx context.Context, lines []domain.Line) error {
	c.puts++
	return c.CartStore.PutCart(ctx, lines)
}

func newTestService(t *testing.T) *CartService {
	t.Helper()
	store := memory.New()
	svc := NewCartService(Stores{Cart: store, SavedCart: store}, catalog.Default())
	svc.clock = func() time.Time {
		return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAddSnapshotsProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, ok := svc.catalog.ByID(1)
	if !ok {
		t.Fatal("expected product 1 in catalog")
	}

	line, err := svc.Add(ctx, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if line.Name != product.Name || line.Price != product.Price || line.Image != product.Image {
		t.Fatalf("expected snapshot of %+v, got %+v", product, line)
	}
	if line.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", line.Quantity)
	}
}

func TestAddTwiceIncrementsSingleLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	line, err := svc.Add(ctx, 1)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if line.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", line.Quantity)
	}

	lines, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), 999)
	if errors.CodeOf(err) != errors.CodeProductNotFound {
		t.Fatalf("expected product not found, got %v", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.UpdateQuantity(ctx, 1, 5); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	qty, err := svc.Quantity(ctx, 1)
	if err != nil {
		t.Fatalf("quantity: %v", err)
	}
	if qty != 5 {
		t.Fatalf("expected quantity 5, got %d", qty)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.UpdateQuantity(ctx, 1, 0); err != nil {
		t.Fatalf("update quantity: %v", err)
	}

	present, err := svc.Contains(ctx, 1)
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if present {
		t.Fatal("expected line removed when quantity drops below 1")
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.UpdateQuantity(ctx, 999, 3); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}

	lines, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected cart untouched, got %+v", lines)
	}
}

func TestMutationsOnAbsentProductStillWriteBack(t *testing.T) {
	store := memory.New()
	counting := &countingCartStore{CartStore: store}
	svc := NewCartService(Stores{Cart: counting, SavedCart: store}, catalog.Default())
	ctx := context.Background()

	if err := svc.UpdateQuantity(ctx, 999, 3); err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if counting.puts != 1 {
		t.Fatalf("expected update to write the cart back, got %d writes", counting.puts)
	}

	_, found, err := svc.Remove(ctx, 999)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if found {
		t.Fatal("expected absent product not found")
	}
	if counting.puts != 2 {
		t.Fatalf("expected remove to write the cart back, got %d writes", counting.puts)
	}
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, found, err := svc.Remove(ctx, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !found {
		t.Fatal("expected line found")
	}
	if removed.ProductID != 1 {
		t.Fatalf("expected removed product 1, got %d", removed.ProductID)
	}

	_, found, err = svc.Remove(ctx, 1)
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if found {
		t.Fatal("expected no-op removing absent product")
	}
}

func TestClear(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	total, err := svc.TotalQuantity(ctx)
	if err != nil {
		t.Fatalf("total quantity: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected empty cart, got %d units", total)
	}
}

func TestSummaryMatchesDomain(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, _ := svc.catalog.ByID(1)
	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	wantSubtotal := product.Price * 2
	if summary.Subtotal != wantSubtotal {
		t.Fatalf("expected subtotal %d, got %d", wantSubtotal, summary.Subtotal)
	}
	if summary.Shipping != 10000 {
		t.Fatalf("expected flat shipping 10000, got %d", summary.Shipping)
	}
	if summary.Total != summary.Subtotal+summary.Tax+summary.Shipping {
		t.Fatalf("inconsistent summary %+v", summary)
	}
}
