package usecase

import (
	"context"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/metrics"
)

type BuyChairUseCase struct {
	chairs    port.ChairRepositoryPort
	publisher port.EventPublisherPort
}

func NewBuyChairUseCase(chairs port.ChairRepositoryPort, publisher port.EventPublisherPort) *BuyChairUseCase {
	return &BuyChairUseCase{chairs: chairs, publisher: publisher}
}

func (uc *BuyChairUseCase) Execute(ctx context.Context, chairID int64, email string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BuyChair",
		"chair_id": chairID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.chairs.Purchase(ctx, chairID); err != nil {
		if err == domain.ErrNotFound {
			ucLogger.Warn("Chair not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return err
	}

	// The purchase is committed; event delivery is best effort.
	event := domain.ChairPurchasedEvent{
		ChairID:     chairID,
		Email:       email,
		PurchasedAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishChairPurchased(ctx, event); err != nil {
		ucLogger.Warn("Failed to publish purchase event", port.Fields{"error": err.Error()})
		metrics.EventsPublishedTotal.WithLabelValues("ChairPurchasedEvent", "error").Inc()
	} else {
		metrics.EventsPublishedTotal.WithLabelValues("ChairPurchasedEvent", "ok").Inc()
	}

	ucLogger.Info("Use case finished successfully", nil)

	return nil
}
