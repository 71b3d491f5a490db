// Package domain defines the cart's value types and the pure order summary
// calculator. Nothing here touches storage; persistence lives behind the
// stores in internal/storage.
package domain

import "time"

// Line is one cart entry, uniquely keyed by ProductID within a cart.
// Name, Price, and Image are snapshotted from the product at add time, so a
// later catalog price change does not affect lines already in the cart.
type Line struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (l Line) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// SavedCart is a single named cart snapshot. There is one slot, not a
// history; saving again overwrites the previous snapshot.
type SavedCart struct {
	Lines   []Line    `json:"cart"`
	SavedAt time.Time `json:"savedAt"`
}

// FindLine returns the index of the line for productID, or -1.
func FindLine(lines []Line, productID int) int {
	for i, l := range lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalQuantity sums quantities across all lines.
func TotalQuantity(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// SubtotalOf sums price times quantity across all lines.
func SubtotalOf(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
