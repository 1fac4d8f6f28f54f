// Package rabbitmq publishes domain events to a RabbitMQ topic exchange. Each
// event is one persistent JSON message routed by its type, e.g.
// "job.application_approved".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"jobboard/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultPublishTimeout = 5 * time.Second

// Config holds connection settings.
type Config struct {
	URL            string
	Exchange       string
	PublishTimeout time.Duration
}

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher. Failures are logged, never returned.
type Publisher struct {
	conn     io.Closer
	channel  Channel
	exchange string
	timeout  time.Duration
	logger   *slog.Logger
}

// Dial connects to the broker and declares the exchange.
func Dial(cfg Config, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	p, err := NewPublisher(conn, ch, cfg, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return p, nil
}

// NewPublisher declares a durable topic exchange on ch and publishes to it.
// conn, if not nil, is closed together with the channel.
func NewPublisher(conn io.Closer, ch Channel, cfg Config, logger *slog.Logger) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		timeout:  timeout,
		logger:   logger.With("component", "rabbitmq", "exchange", cfg.Exchange),
	}, nil
}

type message struct {
	Type       string    `json:"type"`
	JobID      string    `json:"jobId"`
	PosterID   string    `json:"posterId,omitempty"`
	WorkerID   string    `json:"workerId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publish sends the event. It outlives a cancelled request context but not
// the publish timeout.
func (p *Publisher) Publish(ctx context.Context, event ports.Event) {
	body, err := json.Marshal(message{
		Type:       string(event.Type),
		JobID:      event.JobID.String(),
		PosterID:   event.PosterID.String(),
		WorkerID:   event.WorkerID.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode event", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		string(event.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("type", string(event.Type)),
			slog.String("job_id", event.JobID.String()),
			slog.Any("error", err),
		)
		return
	}

	p.logger.DebugContext(ctx, "event published", slog.String("type", string(event.Type)))
}

func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
