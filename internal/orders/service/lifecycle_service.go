package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"coletas/internal/domain"
	apperrors "coletas/internal/errors"
)

type RecordRepository interface {
	Update(id uint, patch domain.RecordPatch) (domain.OrderRecord, error)
	CloseOutDay(date string) int
}

// LifecycleService applies the row actions of the order state machine. There
// are deliberately no transition guards: a cancelled order can be collected
// again (resetting its reversal history) and any order can be marked paid
// before collection. Both gaps come from the source workflow and are kept.
type LifecycleService struct {
	repo   RecordRepository
	logger *zap.Logger
}

func NewLifecycleService(repo RecordRepository, logger *zap.Logger) *LifecycleService {
	return &LifecycleService{
		repo:   repo,
		logger: logger,
	}
}

// Collect marks the order as physically picked up. Collecting always clears
// prior reversal data so the full base freight becomes payable, regardless
// of any earlier cancel or edit.
func (s *LifecycleService) Collect(id uint) (domain.OrderRecord, error) {
	patch := domain.RecordPatch{
		OrderStatus:         ptr(domain.OrderStatusCollected),
		MerchandiseReversed: ptr(false),
		FreightReversal:     ptr(decimal.Zero),
	}
	rec, err := s.repo.Update(id, patch)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	s.logger.Info("order collected", zap.Uint("id", id))
	return rec, nil
}

// Cancel cancels the order. merchandiseReturned is the operator's answer to
// whether the goods made it back to the depot: when they did not, the
// merchandise debit applies; when they did, only the freight is forfeited.
// The decision itself is obtained by the caller, not here.
func (s *LifecycleService) Cancel(id uint, merchandiseReturned bool) (domain.OrderRecord, error) {
	patch := domain.RecordPatch{
		OrderStatus: ptr(domain.OrderStatusCancelled),
	}
	if merchandiseReturned {
		patch.MerchandiseReversed = ptr(false)
		patch.FreightReversal = ptr(decimal.Zero)
	} else {
		patch.MerchandiseReversed = ptr(true)
	}

	rec, err := s.repo.Update(id, patch)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	s.logger.Info("order cancelled", zap.Uint("id", id), zap.Bool("merchandiseReturned", merchandiseReturned))
	return rec, nil
}

// MarkPaid settles the payment axis. Independent of the order status.
func (s *LifecycleService) MarkPaid(id uint) (domain.OrderRecord, error) {
	patch := domain.RecordPatch{
		PaymentStatus: ptr(domain.PaymentStatusPaid),
	}
	rec, err := s.repo.Update(id, patch)
	if err != nil {
		return domain.OrderRecord{}, err
	}
	s.logger.Info("order marked paid", zap.Uint("id", id), zap.String("orderStatus", string(rec.OrderStatus)))
	return rec, nil
}

// MarkSelectedPaid marks every selected order as paid. IDs no longer present
// are skipped silently. Returns the number of records updated.
func (s *LifecycleService) MarkSelectedPaid(ids []uint) int {
	updated := 0
	for _, id := range ids {
		if _, err := s.MarkPaid(id); err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				continue
			}
			s.logger.Warn("mark selected paid failed", zap.Uint("id", id), zap.Error(err))
			continue
		}
		updated++
	}
	s.logger.Info("selection marked paid", zap.Int("selected", len(ids)), zap.Int("updated", updated))
	return updated
}

// CloseOutDay runs the end-of-day sweep for the given ISO date. Irreversible.
func (s *LifecycleService) CloseOutDay(date string) int {
	changed := s.repo.CloseOutDay(date)
	s.logger.Info("close-out sweep finished", zap.String("date", date), zap.Int("changed", changed))
	return changed
}

func ptr[T any](v T) *T {
	return &v
}
