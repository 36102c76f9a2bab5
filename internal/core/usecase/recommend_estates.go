package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// RecommendEstatesUseCase finds estates whose door admits a given chair in at
// least one orientation.
type RecommendEstatesUseCase struct {
	chairs  port.ChairRepositoryPort
	estates port.EstateRepositoryPort
}

func NewRecommendEstatesUseCase(chairs port.ChairRepositoryPort, estates port.EstateRepositoryPort) *RecommendEstatesUseCase {
	return &RecommendEstatesUseCase{chairs: chairs, estates: estates}
}

func (uc *RecommendEstatesUseCase) Execute(ctx context.Context, chairID int64) ([]domain.Estate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RecommendEstates",
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

	estates, err := uc.estates.RecommendForChair(ctx, chair, domain.RecommendLimit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"items": len(estates),
	})

	return estates, nil
}
