package pricing

import (
	"fmt"
	"strconv"
)

// CurrencySymbol prefixes every formatted price. Catalog prices are
// EUR.
const CurrencySymbol = "€"

// FormatPrice renders an amount with the currency prefix and exactly
// two decimal places: 100 -> "€100.00", 0.01 -> "€0.01".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, amount)
}

// FormatDiscountPercent renders a discount percentage without forcing
// decimal places: 10 -> "10%", 12.5 -> "12.5%".
func FormatDiscountPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}
