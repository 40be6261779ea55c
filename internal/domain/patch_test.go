package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecordPatch_ApplyToMergesSetFields(t *testing.T) {
	rec := OrderRecord{
		ID:            7,
		Date:          "2025-09-10",
		Store:         "LOJA A",
		OrderNumber:   "122121",
		OrderStatus:   OrderStatusToCollect,
		PaymentStatus: PaymentStatusOpen,
		Note:          EmptyNote,
	}

	collected := OrderStatusCollected
	reversed := false
	zero := decimal.Zero
	patch := RecordPatch{
		OrderStatus:         &collected,
		MerchandiseReversed: &reversed,
		FreightReversal:     &zero,
	}

	patch.ApplyTo(&rec)

	assert.Equal(t, OrderStatusCollected, rec.OrderStatus)
	assert.False(t, rec.MerchandiseReversed)
	assert.True(t, rec.FreightReversal.IsZero())
	// untouched fields survive the merge
	assert.Equal(t, uint(7), rec.ID)
	assert.Equal(t, "2025-09-10", rec.Date)
	assert.Equal(t, "LOJA A", rec.Store)
	assert.Equal(t, PaymentStatusOpen, rec.PaymentStatus)
	assert.Equal(t, "-", rec.Note)
}

func TestRecordPatch_EmptyPatchChangesNothing(t *testing.T) {
	rec := OrderRecord{
		ID:            3,
		Store:         "LOJA B",
		OrderStatus:   OrderStatusCancelled,
		PaymentStatus: PaymentStatusPaid,
	}
	before := rec

	RecordPatch{}.ApplyTo(&rec)

	assert.Equal(t, before, rec)
}
