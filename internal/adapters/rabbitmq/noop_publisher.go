package rabbitmq

import (
	"context"

	"listing-service/internal/core/domain"
)

// NoopPublisher is wired when event publishing is disabled in configuration.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishChairPurchased(ctx context.Context, event domain.ChairPurchasedEvent) error {
	return nil
}

func (p *NoopPublisher) PublishEstateDocumentRequested(ctx context.Context, event domain.EstateDocumentRequestedEvent) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
