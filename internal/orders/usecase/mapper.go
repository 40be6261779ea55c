package usecase

import (
	"github.com/shopspring/decimal"

	"coletas/internal/domain"
	"coletas/internal/dto"
)

func toRecordDTO(rec domain.OrderRecord, baseFreight decimal.Decimal) dto.Record {
	return dto.Record{
		ID:                  rec.ID,
		Date:                rec.Date,
		Store:               rec.Store,
		OrderNumber:         rec.OrderNumber,
		InvoiceNumber:       rec.InvoiceNumber,
		ProductValue:        rec.ProductValue,
		MerchandiseReversed: rec.MerchandiseReversed,
		FreightReversal:     rec.FreightReversal,
		OrderStatus:         string(rec.OrderStatus),
		PaymentStatus:       string(rec.PaymentStatus),
		Note:                rec.Note,
		PayoutAmount:        rec.Payout(baseFreight),
	}
}
