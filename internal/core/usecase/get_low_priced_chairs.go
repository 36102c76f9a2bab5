package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetLowPricedChairsUseCase struct {
	chairs port.ChairRepositoryPort
}

func NewGetLowPricedChairsUseCase(chairs port.ChairRepositoryPort) *GetLowPricedChairsUseCase {
	return &GetLowPricedChairsUseCase{chairs: chairs}
}

func (uc *GetLowPricedChairsUseCase) Execute(ctx context.Context) ([]domain.Chair, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetLowPricedChairs",
	})

	ucLogger.Info("Use case started", nil)

	chairs, err := uc.chairs.LowPriced(ctx, domain.LowPricedLimit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"items": len(chairs),
	})

	return chairs, nil
}
