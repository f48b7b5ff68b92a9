package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "bookcatalog.events"
	exchangeType = "topic"

	TypeBookCreated  = "book.created"
	TypeBookReserved = "book.reserved"
)

// Event is the wire shape published to the broker.
type Event struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp string         `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

type Publisher interface {
	PublishBookCreated(ctx context.Context, id int64, name, author string) error
	PublishBookReserved(ctx context.Context, id int64) error
	Close() error
}

type amqpPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *slog.Logger
}

// NewPublisher connects to the broker and declares the topic exchange.
func NewPublisher(url string, log *slog.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := channel.ExchangeDeclare(
		exchangeName,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info("connected to broker", "exchange", exchangeName)
	return &amqpPublisher{conn: conn, channel: channel, log: log}, nil
}

func (p *amqpPublisher) PublishBookCreated(ctx context.Context, id int64, name, author string) error {
	return p.publish(ctx, TypeBookCreated, map[string]any{
		"id":     id,
		"name":   name,
		"author": author,
	})
}

func (p *amqpPublisher) PublishBookReserved(ctx context.Context, id int64) error {
	return p.publish(ctx, TypeBookReserved, map[string]any{
		"id": id,
	})
}

func (p *amqpPublisher) publish(ctx context.Context, eventType string, payload map[string]any) error {
	ev := Event{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Payload:   payload,
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		eventType, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.EventID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}

	p.log.Info("event published", "event_id", ev.EventID, "event_type", eventType)
	return nil
}

func (p *amqpPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	return p.conn.Close()
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) PublishBookCreated(context.Context, int64, string, string) error { return nil }
func (Noop) PublishBookReserved(context.Context, int64) error                { return nil }
func (Noop) Close() error                                                    { return nil }
