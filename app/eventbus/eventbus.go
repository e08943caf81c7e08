package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fantakl/votes-admin/pkg/attr"
	nc "github.com/nats-io/nats.go"
)

// Publisher publishes domain events after a write has committed.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// EventBus wraps a watermill publisher and encodes payloads as JSON.
type EventBus struct {
	publisher message.Publisher
	logger    *slog.Logger
}

// New connects to NATS when natsURL is set, otherwise events stay in-process
// on a gochannel pubsub.
func New(natsURL string, logger *slog.Logger) (*EventBus, error) {
	watermillLogger := watermill.NewSlogLogger(logger)

	if natsURL == "" {
		logger.Info("NATS URL not configured, using in-process event bus")
		return NewWithPublisher(gochannel.NewGoChannel(gochannel.Config{}, watermillLogger), logger), nil
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:       natsURL,
			Marshaler: &nats.NATSMarshaler{},
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
				nc.Name("votes-admin"),
			},
			JetStream: nats.JetStreamConfig{Disabled: true},
		},
		watermillLogger,
	)
	if err != nil {
		logger.Error("Failed to create Watermill publisher", attr.Error(err))
		return nil, fmt.Errorf("failed to create Watermill publisher: %w", err)
	}

	return NewWithPublisher(publisher, logger), nil
}

// NewWithPublisher wraps an existing watermill publisher.
func NewWithPublisher(publisher message.Publisher, logger *slog.Logger) *EventBus {
	return &EventBus{publisher: publisher, logger: logger}
}

// Publish marshals payload to JSON and publishes it on topic.
func (eb *EventBus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	msg.Metadata.Set("topic", topic)
	if id := attr.CorrelationID(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	if err := eb.publisher.Publish(topic, msg); err != nil {
		eb.logger.ErrorContext(ctx, "Failed to publish event",
			attr.String("topic", topic),
			attr.Error(err),
		)
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	eb.logger.DebugContext(ctx, "Event published",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
	)
	return nil
}

// Close closes the underlying publisher.
func (eb *EventBus) Close() error {
	return eb.publisher.Close()
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
