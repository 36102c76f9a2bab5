package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type NazotteSearchUseCase struct {
	estates port.EstateRepositoryPort
}

func NewNazotteSearchUseCase(estates port.EstateRepositoryPort) *NazotteSearchUseCase {
	return &NazotteSearchUseCase{estates: estates}
}

func (uc *NazotteSearchUseCase) Execute(ctx context.Context, coordinates []domain.Coordinate) (*domain.EstateSearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "NazotteSearch",
		"vertices": len(coordinates),
	})

	ucLogger.Info("Use case started", nil)

	if len(coordinates) == 0 {
		ucLogger.Warn("Empty coordinate list", nil)
		return nil, domain.NewValidationError("coordinates", "coordinates must not be empty")
	}

	estates, err := uc.estates.SearchInPolygon(ctx, coordinates, domain.NazotteLimit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"items": len(estates),
	})

	return &domain.EstateSearchResult{
		Count:   int64(len(estates)),
		Estates: estates,
	}, nil
}
