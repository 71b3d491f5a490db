package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// pricePrinter renders amounts with Indonesian digit grouping (25.000).
var pricePrinter = message.NewPrinter(language.Indonesian)

// FormatPrice renders a minor-unit amount as a display price, e.g.
// "Rp 25.000".
func FormatPrice(amount int64) string {
	return pricePrinter.Sprintf("Rp %v", number.Decimal(amount))
}

// categoryNames maps categories to display labels.
var categoryNames = map[Category]string{
	CategoryEspresso:   "Espresso",
	CategoryLatte:      "Latte",
	CategoryManualBrew: "Manual Brew",
	CategorySignature:  "Signature",
}

// CategoryName returns the display label for a category, falling back to
// the raw value for unknown categories.
func CategoryName(category Category) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return string(category)
}
