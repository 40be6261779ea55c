package orders

import (
	"go.uber.org/zap"

	"coletas/internal/config"
	"coletas/internal/orders/repository"
	"coletas/internal/orders/service"
	"coletas/internal/orders/usecase"
)

// Module bundles the record store and the operations built on top of it.
type Module struct {
	Records   *repository.MemoryRecordRepository
	Lifecycle *service.LifecycleService
	Create    *usecase.CreateRecordUseCase
	Update    *usecase.UpdateRecordUseCase
	Query     *usecase.QueryRecordsUseCase
}

func NewModule(cfg *config.Config, logger *zap.Logger) *Module {
	repo := repository.NewMemoryRecordRepository()
	baseFreight := cfg.BaseFreight()

	return &Module{
		Records:   repo,
		Lifecycle: service.NewLifecycleService(repo, logger),
		Create:    usecase.NewCreateRecordUseCase(repo, baseFreight, logger),
		Update:    usecase.NewUpdateRecordUseCase(repo, baseFreight, logger),
		Query:     usecase.NewQueryRecordsUseCase(repo, baseFreight),
	}
}
