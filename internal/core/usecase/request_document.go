package usecase

import (
	"context"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/metrics"
)

type RequestDocumentUseCase struct {
	estates   port.EstateRepositoryPort
	publisher port.EventPublisherPort
}

func NewRequestDocumentUseCase(estates port.EstateRepositoryPort, publisher port.EventPublisherPort) *RequestDocumentUseCase {
	return &RequestDocumentUseCase{estates: estates, publisher: publisher}
}

func (uc *RequestDocumentUseCase) Execute(ctx context.Context, estateID int64, email string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "RequestDocument",
		"estate_id": estateID,
	})

	ucLogger.Info("Use case started", nil)

	if _, err := uc.estates.GetByID(ctx, estateID); err != nil {
		if err == domain.ErrNotFound {
			ucLogger.Warn("Estate not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return err
	}

	event := domain.EstateDocumentRequestedEvent{
		EstateID:    estateID,
		Email:       email,
		RequestedAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishEstateDocumentRequested(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish document request event", port.Fields{"error": err.Error()})
		metrics.EventsPublishedTotal.WithLabelValues("EstateDocumentRequestedEvent", "error").Inc()
	} else {
		metrics.EventsPublishedTotal.WithLabelValues("EstateDocumentRequestedEvent", "ok").Inc()
	}

	ucLogger.Info("Use case finished successfully", nil)

	return nil
}
