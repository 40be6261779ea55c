package domain

import "github.com/shopspring/decimal"

// Payout returns the amount owed to the carrier for this record.
//
// Rules by order status:
//   - CANCELLED with merchandise not returned: debit of product value plus
//     the base freight fee, as a negative amount.
//   - CANCELLED with merchandise returned: zero.
//   - COLLECTED: base freight minus the freight reversal, minus the product
//     value when the merchandise reversal applies, floored at zero.
//   - TO_COLLECT or anything else: zero, freight is only payable once the
//     order has been physically collected.
//
// The result is rounded to 2 decimal places, half away from zero. Pure and
// total: no side effects, never fails.
func (r OrderRecord) Payout(baseFreight decimal.Decimal) decimal.Decimal {
	switch r.OrderStatus {
	case OrderStatusCancelled:
		if r.MerchandiseReversed {
			return r.ProductValue.Add(baseFreight).Neg().Round(2)
		}
		return decimal.Zero
	case OrderStatusCollected:
		amount := baseFreight.Sub(r.FreightReversal)
		if r.MerchandiseReversed {
			amount = amount.Sub(r.ProductValue)
		}
		if amount.IsNegative() {
			return decimal.Zero
		}
		return amount.Round(2)
	default:
		return decimal.Zero
	}
}
