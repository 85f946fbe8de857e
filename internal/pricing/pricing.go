package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

// The catalog stores prices as display strings ("$29.99"); orders carry
// float amounts coming from JSON. This package is the one place that
// converts between the two, using decimals so totals verify exactly.

// centTolerance absorbs float64 noise in client-supplied totals.
var centTolerance = decimal.New(1, -2) // 0.01

// Parse converts a catalog price string like "$29.99" (currency symbol
// and thousands separators optional) into a decimal amount.
func Parse(price string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(price)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty price", models.ErrValidation)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed price %q", models.ErrValidation, price)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative price %q", models.ErrValidation, price)
	}
	return d, nil
}

// Format renders an amount back into the catalog's display form.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// LineTotalOK verifies that total equals price x quantity to the cent.
func LineTotalOK(price float64, quantity int, total float64) bool {
	want := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	got := decimal.NewFromFloat(total)
	return want.Sub(got).Abs().LessThanOrEqual(centTolerance)
}
