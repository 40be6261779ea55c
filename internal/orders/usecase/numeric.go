package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a monetary input permissively: blank or unparsable
// values become zero so they never propagate into the payout computation.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
