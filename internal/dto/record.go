package dto

import "github.com/shopspring/decimal"

// Record is the outward view of an order record. PayoutAmount is computed at
// mapping time and is never a source of truth.
type Record struct {
	ID                  uint            `json:"id"`
	Date                string          `json:"date"`
	Store               string          `json:"store"`
	OrderNumber         string          `json:"orderNumber"`
	InvoiceNumber       string          `json:"invoiceNumber"`
	ProductValue        decimal.Decimal `json:"productValue"`
	MerchandiseReversed bool            `json:"merchandiseReversed"`
	FreightReversal     decimal.Decimal `json:"freightReversal"`
	OrderStatus         string          `json:"orderStatus"`
	PaymentStatus       string          `json:"paymentStatus"`
	Note                string          `json:"note"`
	PayoutAmount        decimal.Decimal `json:"payoutAmount"`
}

// Summary aggregates a filtered view: record counts by handling state and
// the payout total over the whole set.
type Summary struct {
	Total       int             `json:"total"`
	Collected   int             `json:"collected"`
	Pending     int             `json:"pending"`
	TotalPayout decimal.Decimal `json:"totalPayout"`
}
