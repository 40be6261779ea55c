package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"coletas/internal/domain"
	"coletas/internal/dto"
	apperrors "coletas/internal/errors"
)

type RecordInserter interface {
	Insert(rec domain.OrderRecord) domain.OrderRecord
}

type CreateRecordUseCase struct {
	repo        RecordInserter
	baseFreight decimal.Decimal
	logger      *zap.Logger
}

func NewCreateRecordUseCase(repo RecordInserter, baseFreight decimal.Decimal, logger *zap.Logger) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		repo:        repo,
		baseFreight: baseFreight,
		logger:      logger,
	}
}

// CreateRecord validates the required fields, coerces the monetary inputs
// and inserts the record at the front of the collection. Nothing reaches the
// repository when validation fails.
func (uc *CreateRecordUseCase) CreateRecord(in dto.CreateRecordInput) (*dto.Record, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	rec := domain.OrderRecord{
		Date:                strings.TrimSpace(in.Date),
		Store:               strings.TrimSpace(in.Store),
		OrderNumber:         strings.TrimSpace(in.OrderNumber),
		InvoiceNumber:       strings.TrimSpace(in.InvoiceNumber),
		ProductValue:        ParseAmount(in.ProductValue),
		MerchandiseReversed: in.MerchandiseReversed,
		FreightReversal:     ParseAmount(in.FreightReversal),
		OrderStatus:         orderStatusOrDefault(in.OrderStatus),
		PaymentStatus:       paymentStatusOrDefault(in.PaymentStatus),
		Note:                noteOrPlaceholder(in.Note),
	}

	created := uc.repo.Insert(rec)
	uc.logger.Info("record created",
		zap.Uint("id", created.ID),
		zap.String("date", created.Date),
		zap.String("store", created.Store),
		zap.String("orderNumber", created.OrderNumber),
	)

	out := toRecordDTO(created, uc.baseFreight)
	return &out, nil
}

func (uc *CreateRecordUseCase) validate(in dto.CreateRecordInput) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(in.Date) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "date",
			Message: "date is required",
		})
	}
	if strings.TrimSpace(in.Store) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "store",
			Message: "store is required",
		})
	}
	if strings.TrimSpace(in.OrderNumber) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "orderNumber",
			Message: "orderNumber is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func orderStatusOrDefault(s string) domain.OrderStatus {
	switch domain.OrderStatus(s) {
	case domain.OrderStatusCollected, domain.OrderStatusCancelled, domain.OrderStatusToCollect:
		return domain.OrderStatus(s)
	default:
		return domain.OrderStatusToCollect
	}
}

func paymentStatusOrDefault(s string) domain.PaymentStatus {
	switch domain.PaymentStatus(s) {
	case domain.PaymentStatusPaid, domain.PaymentStatusOpen:
		return domain.PaymentStatus(s)
	default:
		return domain.PaymentStatusOpen
	}
}

func noteOrPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.EmptyNote
	}
	return s
}
