// Package nats adapts the Event Bus port onto NATS JetStream:
// a partitioned, at-least-once message bus keyed by transaction id.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"payment-orchestrator/internal/core/ports"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// Config holds the JetStream connection settings.
type Config struct {
	URL             string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ReconnectJitter time.Duration
}

// DefaultConfig returns development-friendly connection settings.
func DefaultConfig(url string) Config {
	return Config{
		URL:             url,
		MaxReconnects:   -1,
		ReconnectWait:   2 * time.Second,
		ReconnectJitter: 500 * time.Millisecond,
	}
}

// Bus implements ports.EventBus over JetStream limits-retention streams. Each
// topic maps to one stream; Publish addresses a subject of the form
// "<topic>.<key>" so that messages for the same transaction land on the
// same subject and are delivered in order to a given consumer.
type Bus struct {
	nc  *nats.Conn
	js  jetstream.JetStream
	log zerolog.Logger
}

// NewBus connects to NATS and wraps it with a JetStream context.
func NewBus(ctx context.Context, cfg Config, log zerolog.Logger) (*Bus, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.ReconnectJitter(cfg.ReconnectJitter, cfg.ReconnectJitter*2),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	return &Bus{nc: nc, js: js, log: log}, nil
}

// EnsureStreams creates (or updates) the streams backing the two topics
// the orchestrator publishes to.
func (b *Bus) EnsureStreams(ctx context.Context) error {
	for _, topic := range []string{ports.TopicPaymentEvents, ports.TopicPaymentResults} {
		_, err := b.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:      streamName(topic),
			Subjects:  []string{topic + ".>"},
			Retention: jetstream.LimitsPolicy,
			MaxAge:    7 * 24 * time.Hour,
			Storage:   jetstream.FileStorage,
		})
		if err != nil {
			return fmt.Errorf("create stream for %s: %w", topic, err)
		}
	}
	return nil
}

// Publish sends evt to subject "<topic>.<key>" so same-key messages share
// a subject and preserve per-transaction order.
func (b *Bus) Publish(ctx context.Context, topic, key string, evt ports.PaymentEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal payment event: %w", err)
	}
	subject := topic + "." + key
	if _, err := b.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}

// Subscribe creates (or reuses) a durable consumer named groupID on the
// stream behind topic and runs handler for each delivered message in a
// background goroutine until ctx is cancelled. At-least-once redelivery:
// a handler error leaves the message unacked so JetStream redelivers it.
func (b *Bus) Subscribe(ctx context.Context, topic, groupID string, handler ports.EventHandler) error {
	consumer, err := b.js.CreateOrUpdateConsumer(ctx, streamName(topic), jetstream.ConsumerConfig{
		Durable:       groupID,
		FilterSubject: topic + ".>",
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    -1,
		AckWait:       30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s on %s: %w", groupID, topic, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		var evt ports.PaymentEvent
		if err := json.Unmarshal(msg.Data(), &evt); err != nil {
			b.log.Error().Err(err).Str("subject", msg.Subject()).Msg("failed to unmarshal payment event, acking to avoid poison redelivery")
			_ = msg.Ack()
			return
		}
		if err := handler(ctx, evt); err != nil {
			b.log.Warn().Err(err).Str("subject", msg.Subject()).Msg("handler failed, leaving message for redelivery")
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("start consuming %s/%s: %w", topic, groupID, err)
	}

	go func() {
		<-ctx.Done()
		consumeCtx.Stop()
	}()
	return nil
}

// Close drains the underlying NATS connection.
func (b *Bus) Close() error {
	return b.nc.Drain()
}

func streamName(topic string) string {
	return strings.ToUpper(strings.ReplaceAll(topic, "-", "_"))
}
