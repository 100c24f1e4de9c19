package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publisherAppID = "maverick-bank"

type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error
	PublishUserUpdated(ctx context.Context, event UserUpdatedEvent) error
	PublishUserDeleted(ctx context.Context, event UserDeletedEvent) error
	PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error
	PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error
	PublishCustomerDeleted(ctx context.Context, event CustomerDeletedEvent) error
	PublishEmployeeCreated(ctx context.Context, event EmployeeCreatedEvent) error
}

type RabbitMQEventPublisher struct {
	conn         *amqp.Connection
	exchangeName string
	logger       *slog.Logger
}

var _ EventPublisher = (*RabbitMQEventPublisher)(nil)

func NewRabbitMQEventPublisher(conn *amqp.Connection, exchangeName string, logger *slog.Logger) (*RabbitMQEventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("RabbitMQ connection cannot be nil")
	}
	if exchangeName == "" {
		return nil, fmt.Errorf("RabbitMQ exchange name cannot be empty")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	tempCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary channel for exchange declaration: %w", err)
	}
	defer tempCh.Close()

	err = tempCh.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	logger.Info("Ensured RabbitMQ exchange exists", "exchange", exchangeName, "type", amqp.ExchangeTopic)

	return &RabbitMQEventPublisher{
		conn:         conn,
		exchangeName: exchangeName,
		logger:       logger.With("component", "RabbitMQEventPublisher", "exchange", exchangeName),
	}, nil
}

func (p *RabbitMQEventPublisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	logCtx := p.logger.With(slog.String("routingKey", routingKey))

	channel, err := p.conn.Channel()
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to open RabbitMQ channel", slog.Any("error", err))
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	body, err := json.Marshal(payload)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to marshal event payload to JSON", slog.Any("error", err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	logCtx.DebugContext(ctx, "Publishing message", "bodySize", len(body))

	err = channel.PublishWithContext(
		ctx,
		p.exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			AppId:        publisherAppID,
		},
	)

	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to publish message to RabbitMQ", slog.Any("error", err))
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logCtx.InfoContext(ctx, "Successfully published message")
	return nil
}

func (p *RabbitMQEventPublisher) PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error {
	return p.publish(ctx, routingKeyUserRegistered, event)
}

func (p *RabbitMQEventPublisher) PublishUserUpdated(ctx context.Context, event UserUpdatedEvent) error {
	return p.publish(ctx, routingKeyUserUpdated, event)
}

func (p *RabbitMQEventPublisher) PublishUserDeleted(ctx context.Context, event UserDeletedEvent) error {
	return p.publish(ctx, routingKeyUserDeleted, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	return p.publish(ctx, routingKeyCustomerCreated, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	return p.publish(ctx, routingKeyCustomerUpdated, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerDeleted(ctx context.Context, event CustomerDeletedEvent) error {
	return p.publish(ctx, routingKeyCustomerDeleted, event)
}

func (p *RabbitMQEventPublisher) PublishEmployeeCreated(ctx context.Context, event EmployeeCreatedEvent) error {
	return p.publish(ctx, routingKeyEmployeeCreated, event)
}

// NoopEventPublisher is wired when RabbitMQ is disabled in configuration.
type NoopEventPublisher struct{}

var _ EventPublisher = (*NoopEventPublisher)(nil)

func NewNoopEventPublisher() *NoopEventPublisher { return &NoopEventPublisher{} }

func (*NoopEventPublisher) PublishUserRegistered(context.Context, UserRegisteredEvent) error {
	return nil
}
func (*NoopEventPublisher) PublishUserUpdated(context.Context, UserUpdatedEvent) error   { return nil }
func (*NoopEventPublisher) PublishUserDeleted(context.Context, UserDeletedEvent) error   { return nil }
func (*NoopEventPublisher) PublishCustomerCreated(context.Context, CustomerCreatedEvent) error {
	return nil
}
func (*NoopEventPublisher) PublishCustomerUpdated(context.Context, CustomerUpdatedEvent) error {
	return nil
}
func (*NoopEventPublisher) PublishCustomerDeleted(context.Context, CustomerDeletedEvent) error {
	return nil
}
func (*NoopEventPublisher) PublishEmployeeCreated(context.Context, EmployeeCreatedEvent) error {
	return nil
}
