package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetChairDetailsUseCase struct {
	chairs port.ChairRepositoryPort
}

func NewGetChairDetailsUseCase(chairs port.ChairRepositoryPort) *GetChairDetailsUseCase {
	return &GetChairDetailsUseCase{chairs: chairs}
}

func (uc *GetChairDetailsUseCase) Execute(ctx context.Context, chairID int64) (*domain.Chair, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetChairDetails",
		"chair_id": chairID,
	})

	ucLogger.Info("Use case started", nil)

	chair, err := uc.chairs.GetByID(ctx, chairID)
	if err != nil {
		if err == domain.ErrNotFound {
			ucLogger.Warn("Chair not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	// Listings without stock disappear from the catalog.
	if chair.Stock <= 0 {
		ucLogger.Warn("Chair is sold out", nil)
		return nil, domain.ErrSoldOut
	}

	ucLogger.Info("Use case finished successfully", nil)

	return chair, nil
}
