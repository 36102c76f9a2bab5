package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type SearchEstatesUseCase struct {
	estates port.EstateRepositoryPort
}

func NewSearchEstatesUseCase(estates port.EstateRepositoryPort) *SearchEstatesUseCase {
	return &SearchEstatesUseCase{estates: estates}
}

func (uc *SearchEstatesUseCase) Execute(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchEstates",
		"page":     page.Page,
		"per_page": page.PerPage,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.estates.Search(ctx, filters, page)
	if err != nil {
		if domain.IsClientError(err) {
			ucLogger.Warn("Search rejected", port.Fields{"reason": err.Error()})
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.Count,
		"items_on_page": len(result.Estates),
	})

	return result, nil
}
