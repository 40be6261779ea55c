package domain

import "github.com/shopspring/decimal"

// RecordPatch is a partial record. Nil fields are left untouched when the
// patch is applied; set fields overwrite. The record ID is not patchable.
type RecordPatch struct {
	Date                *string
	Store               *string
	OrderNumber         *string
	InvoiceNumber       *string
	ProductValue        *decimal.Decimal
	MerchandiseReversed *bool
	FreightReversal     *decimal.Decimal
	OrderStatus         *OrderStatus
	PaymentStatus       *PaymentStatus
	Note                *string
}

func (p RecordPatch) ApplyTo(r *OrderRecord) {
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Store != nil {
		r.Store = *p.Store
	}
	if p.OrderNumber != nil {
		r.OrderNumber = *p.OrderNumber
	}
	if p.InvoiceNumber != nil {
		r.InvoiceNumber = *p.InvoiceNumber
	}
	if p.ProductValue != nil {
		r.ProductValue = *p.ProductValue
	}
	if p.MerchandiseReversed != nil {
		r.MerchandiseReversed = *p.MerchandiseReversed
	}
	if p.FreightReversal != nil {
		r.FreightReversal = *p.FreightReversal
	}
	if p.OrderStatus != nil {
		r.OrderStatus = *p.OrderStatus
	}
	if p.PaymentStatus != nil {
		r.PaymentStatus = *p.PaymentStatus
	}
	if p.Note != nil {
		r.Note = *p.Note
	}
}
