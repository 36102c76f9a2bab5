package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetLowPricedEstatesUseCase struct {
	estates port.EstateRepositoryPort
}

func NewGetLowPricedEstatesUseCase(estates port.EstateRepositoryPort) *GetLowPricedEstatesUseCase {
	return &GetLowPricedEstatesUseCase{estates: estates}
}

func (uc *GetLowPricedEstatesUseCase) Execute(ctx context.Context) ([]domain.Estate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetLowPricedEstates",
	})

	ucLogger.Info("Use case started", nil)

	estates, err := uc.estates.LowPriced(ctx, domain.LowPricedLimit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"items": len(estates),
	})

	return estates, nil
}
