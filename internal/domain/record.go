package domain

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusToCollect OrderStatus = "TO_COLLECT"
	OrderStatusCollected OrderStatus = "COLLECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusOpen PaymentStatus = "OPEN"
	PaymentStatusPaid PaymentStatus = "PAID"
)

// EmptyNote is the placeholder stored when a record has no observation.
const EmptyNote = "-"

// OrderRecord is one tracked pickup order. Dates are raw ISO YYYY-MM-DD
// strings and compare lexicographically. The payout amount is never stored
// here: it is derived from the other fields on every read.
type OrderRecord struct {
	ID                  uint
	Date                string
	Store               string
	OrderNumber         string
	InvoiceNumber       string
	ProductValue        decimal.Decimal
	MerchandiseReversed bool
	FreightReversal     decimal.Decimal
	OrderStatus         OrderStatus
	PaymentStatus       PaymentStatus
	Note                string
}
