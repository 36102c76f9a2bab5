package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"listing-service/internal/constants"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventPublisher emits domain events to the listing exchange. Payloads are
// validated against the embedded schema contracts before leaving the process.
type EventPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	logger     port.LoggerPort
}

func NewEventPublisher(url string, logger port.LoggerPort) (*EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("publisher: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("publisher: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		constants.ExchangeName,
		constants.ExchangeType,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("publisher: failed to declare exchange '%s': %w", constants.ExchangeName, err)
	}

	return &EventPublisher{connection: conn, channel: ch, logger: logger}, nil
}

func (p *EventPublisher) publish(ctx context.Context, routingKey, eventType string, payload interface{}) error {
	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("publisher: not connected or channel/connection is closed")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("publisher: failed to marshal event payload: %w", err)
	}

	if err := contracts.Validate(eventType, constants.EventVersion, body); err != nil {
		return fmt.Errorf("publisher: event contract violation: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		constants.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers: amqp.Table{
				"event_type":    eventType,
				"event_version": constants.EventVersion,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("publisher: failed to publish message: %w", err)
	}

	p.logger.Debug("Event published", port.Fields{
		"routing_key": routingKey,
		"event_type":  eventType,
	})
	return nil
}

func (p *EventPublisher) PublishChairPurchased(ctx context.Context, event domain.ChairPurchasedEvent) error {
	return p.publish(ctx, constants.RoutingKeyChairPurchased, constants.EventTypeChairPurchased, event)
}

func (p *EventPublisher) PublishEstateDocumentRequested(ctx context.Context, event domain.EstateDocumentRequestedEvent) error {
	return p.publish(ctx, constants.RoutingKeyEstateDocumentRequested, constants.EventTypeEstateDocumentRequested, event)
}

func (p *EventPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.connection != nil {
		return p.connection.Close()
	}
	return nil
}
