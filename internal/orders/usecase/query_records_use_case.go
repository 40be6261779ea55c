package usecase

import (
	"github.com/shopspring/decimal"

	"coletas/internal/domain"
	"coletas/internal/dto"
)

type RecordLister interface {
	List(filter domain.RecordFilter) []domain.OrderRecord
}

type QueryRecordsUseCase struct {
	repo        RecordLister
	baseFreight decimal.Decimal
}

func NewQueryRecordsUseCase(repo RecordLister, baseFreight decimal.Decimal) *QueryRecordsUseCase {
	return &QueryRecordsUseCase{
		repo:        repo,
		baseFreight: baseFreight,
	}
}

// QueryRecords returns the filtered view, most recent first, with the payout
// freshly computed for every row.
func (uc *QueryRecordsUseCase) QueryRecords(filter domain.RecordFilter) []dto.Record {
	records := uc.repo.List(filter)

	out := make([]dto.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordDTO(rec, uc.baseFreight))
	}
	return out
}

// Summarize aggregates a view produced by QueryRecords.
func (uc *QueryRecordsUseCase) Summarize(records []dto.Record) dto.Summary {
	summary := dto.Summary{
		Total:       len(records),
		TotalPayout: decimal.Zero,
	}
	for _, rec := range records {
		switch domain.OrderStatus(rec.OrderStatus) {
		case domain.OrderStatusCollected:
			summary.Collected++
		case domain.OrderStatusToCollect:
			summary.Pending++
		}
		summary.TotalPayout = summary.TotalPayout.Add(rec.PayoutAmount)
	}
	return summary
}
