package usecase

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"coletas/internal/domain"
	"coletas/internal/dto"
)

type RecordUpdater interface {
	Update(id uint, patch domain.RecordPatch) (domain.OrderRecord, error)
}

type UpdateRecordUseCase struct {
	repo        RecordUpdater
	baseFreight decimal.Decimal
	logger      *zap.Logger
}

func NewUpdateRecordUseCase(repo RecordUpdater, baseFreight decimal.Decimal, logger *zap.Logger) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		repo:        repo,
		baseFreight: baseFreight,
		logger:      logger,
	}
}

// UpdateRecord merges the patch into the stored record. Unknown IDs surface
// as a NotFoundError from the repository, with no partial mutation.
func (uc *UpdateRecordUseCase) UpdateRecord(id uint, patch domain.RecordPatch) (*dto.Record, error) {
	updated, err := uc.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("record updated",
		zap.Uint("id", updated.ID),
		zap.String("orderStatus", string(updated.OrderStatus)),
		zap.String("paymentStatus", string(updated.PaymentStatus)),
	)

	out := toRecordDTO(updated, uc.baseFreight)
	return &out, nil
}
