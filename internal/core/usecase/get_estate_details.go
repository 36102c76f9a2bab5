package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetEstateDetailsUseCase struct {
	estates port.EstateRepositoryPort
}

func NewGetEstateDetailsUseCase(estates port.EstateRepositoryPort) *GetEstateDetailsUseCase {
	return &GetEstateDetailsUseCase{estates: estates}
}

func (uc *GetEstateDetailsUseCase) Execute(ctx context.Context, estateID int64) (*domain.Estate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetEstateDetails",
		"estate_id": estateID,
	})

	ucLogger.Info("Use case started", nil)

	estate, err := uc.estates.GetByID(ctx, estateID)
	if err != nil {
		if err == domain.ErrNotFound {
			ucLogger.Warn("Estate not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)

	return estate, nil
}
