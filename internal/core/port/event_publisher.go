package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// EventPublisherPort emits domain events to downstream consumers. Publishing
// is best-effort; callers log failures and never fail the request over them.
type EventPublisherPort interface {
	PublishChairPurchased(ctx context.Context, event domain.ChairPurchasedEvent) error
	PublishEstateDocumentRequested(ctx context.Context, event domain.EstateDocumentRequestedEvent) error
	Close() error
}
