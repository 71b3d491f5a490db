package domain

// Tax and shipping constants. The tax rate is a fixed 10% and shipping is a
// flat fee charged on any non-empty cart; neither is configurable.
const (
	taxRatePercent  = 10
	shippingFlatFee = 10000
)

// Summary is the order summary derived from cart contents. All monetary
// fields are in minor currency units (whole Rupiah).
type Summary struct {
	Subtotal        int64
	Tax             int64
	Shipping        int64
	Total           int64
	ItemCount       int
	UniqueItemCount int
}

// ComputeSummary derives the order summary from cart lines. It is pure:
// identical input always yields identical output.
//
// Tax is 10% of the subtotal, rounded half up to the nearest minor unit.
// Prices in this domain are whole Rupiah, so rounding only matters for
// subtotals not divisible by 10.
func ComputeSummary(lines []Line) Summary {
	subtotal := SubtotalOf(lines)

	var tax, shipping int64
	if subtotal > 0 {
		tax = roundHalfUp(subtotal*taxRatePercent, 100)
		shipping = shippingFlatFee
	}

	return Summary{
		Subtotal:        subtotal,
		Tax:             tax,
		Shipping:        shipping,
		Total:           subtotal + tax + shipping,
		ItemCount:       TotalQuantity(lines),
		UniqueItemCount: len(lines),
	}
}

// Discount is a promotion code effect: either a percentage off the subtotal
// or free shipping.
type Discount struct {
	Code         string
	Description  string
	Percent      int64
	FreeShipping bool
}

// WithDiscount returns a copy of the summary with the discount applied.
// Percentage discounts reduce the subtotal and recompute tax on the reduced
// amount; free-shipping discounts zero the shipping fee. The total is
// recomputed either way.
func (s Summary) WithDiscount(d Discount) Summary {
	out := s

	if d.Percent > 0 {
		out.Subtotal = s.Subtotal - roundHalfUp(s.Subtotal*d.Percent, 100)
		out.Tax = 0
		if out.Subtotal > 0 {
			out.Tax = roundHalfUp(out.Subtotal*taxRatePercent, 100)
		}
	}
	if d.FreeShipping {
		out.Shipping = 0
	}

	out.Total = out.Subtotal + out.Tax + out.Shipping
	return out
}

// roundHalfUp divides numerator by denominator, rounding half up.
// Inputs are non-negative in this domain.
func roundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}
