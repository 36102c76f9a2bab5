package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type SearchChairsUseCase struct {
	chairs port.ChairRepositoryPort
}

func NewSearchChairsUseCase(chairs port.ChairRepositoryPort) *SearchChairsUseCase {
	return &SearchChairsUseCase{chairs: chairs}
}

func (uc *SearchChairsUseCase) Execute(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchChairs",
		"page":     page.Page,
		"per_page": page.PerPage,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.chairs.Search(ctx, filters, page)
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
		"items_on_page": len(result.Chairs),
	})

	return result, nil
}
