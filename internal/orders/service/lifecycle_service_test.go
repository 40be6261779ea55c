package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"coletas/internal/domain"
	apperrors "coletas/internal/errors"
)

type mockRecordRepository struct {
	UpdateFunc      func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error)
	CloseOutDayFunc func(date string) int
}

func (m *mockRecordRepository) Update(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
	return m.UpdateFunc(id, patch)
}

func (m *mockRecordRepository) CloseOutDay(date string) int {
	return m.CloseOutDayFunc(date)
}

func echoUpdate(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
	rec := domain.OrderRecord{ID: id, OrderStatus: domain.OrderStatusToCollect, PaymentStatus: domain.PaymentStatusOpen}
	patch.ApplyTo(&rec)
	return rec, nil
}

func TestCollect_ResetsReversalData(t *testing.T) {
	var captured domain.RecordPatch
	repo := &mockRecordRepository{
		UpdateFunc: func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
			captured = patch
			return echoUpdate(id, patch)
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	rec, err := svc.Collect(5)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCollected, rec.OrderStatus)
	require.NotNil(t, captured.MerchandiseReversed)
	assert.False(t, *captured.MerchandiseReversed)
	require.NotNil(t, captured.FreightReversal)
	assert.True(t, captured.FreightReversal.IsZero())
	assert.Nil(t, captured.PaymentStatus)
}

func TestCancel_MerchandiseKeptSetsReversal(t *testing.T) {
	var captured domain.RecordPatch
	repo := &mockRecordRepository{
		UpdateFunc: func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
			captured = patch
			return echoUpdate(id, patch)
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	rec, err := svc.Cancel(5, false)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, rec.OrderStatus)
	require.NotNil(t, captured.MerchandiseReversed)
	assert.True(t, *captured.MerchandiseReversed)
	// freight reversal is left alone in this branch
	assert.Nil(t, captured.FreightReversal)
}

func TestCancel_MerchandiseReturnedClearsReversals(t *testing.T) {
	var captured domain.RecordPatch
	repo := &mockRecordRepository{
		UpdateFunc: func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
			captured = patch
			return echoUpdate(id, patch)
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	rec, err := svc.Cancel(5, true)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, rec.OrderStatus)
	require.NotNil(t, captured.MerchandiseReversed)
	assert.False(t, *captured.MerchandiseReversed)
	require.NotNil(t, captured.FreightReversal)
	assert.True(t, captured.FreightReversal.IsZero())
}

func TestMarkPaid_OnlyTouchesPaymentStatus(t *testing.T) {
	var captured domain.RecordPatch
	repo := &mockRecordRepository{
		UpdateFunc: func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
			captured = patch
			return echoUpdate(id, patch)
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	rec, err := svc.MarkPaid(5)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, rec.PaymentStatus)
	// no guard: the order status stays whatever it was
	assert.Equal(t, domain.OrderStatusToCollect, rec.OrderStatus)
	assert.Nil(t, captured.OrderStatus)
	assert.Nil(t, captured.MerchandiseReversed)
}

func TestMarkPaid_PropagatesNotFound(t *testing.T) {
	repo := &mockRecordRepository{
		UpdateFunc: func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
			return domain.OrderRecord{}, apperrors.NewNotFoundError("record with id 9 not found")
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	_, err := svc.MarkPaid(9)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMarkSelectedPaid_SkipsMissingIDs(t *testing.T) {
	repo := &mockRecordRepository{
		UpdateFunc: func(id uint, patch domain.RecordPatch) (domain.OrderRecord, error) {
			if id == 2 {
				return domain.OrderRecord{}, apperrors.NewNotFoundError("record with id 2 not found")
			}
			return echoUpdate(id, patch)
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	updated := svc.MarkSelectedPaid([]uint{1, 2, 3})

	assert.Equal(t, 2, updated)
}

func TestCloseOutDay_DelegatesToRepository(t *testing.T) {
	var sweptDate string
	repo := &mockRecordRepository{
		CloseOutDayFunc: func(date string) int {
			sweptDate = date
			return 4
		},
	}
	svc := NewLifecycleService(repo, zap.NewNop())

	changed := svc.CloseOutDay("2025-09-10")

	assert.Equal(t, 4, changed)
	assert.Equal(t, "2025-09-10", sweptDate)
}
