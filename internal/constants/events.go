package constants

// RabbitMQ topology and event identity shared by the publisher and consumers.
const (
	ExchangeName = "listing_exchange"
	ExchangeType = "direct"

	RoutingKeyChairPurchased          = "chair.purchased"
	RoutingKeyEstateDocumentRequested = "estate.document_requested"

	EventTypeChairPurchased          = "ChairPurchasedEvent"
	EventTypeEstateDocumentRequested = "EstateDocumentRequestedEvent"
	EventVersion                     = "1.0.0"
)
