// Package queue moves resume parse jobs through RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/types"
)

// DefaultPrefetch bounds unacknowledged deliveries per consumer.
const DefaultPrefetch = 4

// Handler processes one message body. Returning a PermanentError drops the
// message; any other error requeues it once.
type Handler func(ctx context.Context, body []byte) error

// Broker is a connection to RabbitMQ bound to one durable queue.
type Broker struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	prefetch int
	logger   *zap.Logger

	publishMu sync.Mutex
}

// Dial connects to url and declares queue as durable.
func Dial(url, queue string, prefetch int, logger *zap.Logger) (*Broker, error) {
	if url == "" {
		return nil, fmt.Errorf("amqp URL is empty")
	}
	if queue == "" {
		return nil, fmt.Errorf("queue name is empty")
	}
	if prefetch <= 0 {
		prefetch = DefaultPrefetch
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Broker{conn: conn, ch: ch, queue: queue, prefetch: prefetch, logger: logger}, nil
}

// Close closes the channel and connection.
func (b *Broker) Close() error {
	if b.ch != nil {
		_ = b.ch.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

// PublishParseJob enqueues a resume parse request as a persistent JSON message.
func (b *Broker) PublishParseJob(ctx context.Context, job types.ParseResumeRequest) error {
	body, err := EncodeParseJob(job)
	if err != nil {
		return err
	}

	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	err = b.ch.PublishWithContext(ctx, "", b.queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish parse job: %w", err)
	}
	return nil
}

// Consume delivers messages to handler until ctx is canceled or the channel closes.
func (b *Broker) Consume(ctx context.Context, handler Handler) error {
	deliveries, err := b.ch.Consume(b.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	b.logger.Info("consumer started", zap.String("queue", b.queue), zap.Int("prefetch", b.prefetch))
	defer b.logger.Info("consumer stopped", zap.String("queue", b.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			settle(ctx, d, handler, b.logger)
		}
	}
}

// settle runs handler and acknowledges the delivery: ack on success, drop permanent
// failures, requeue other failures unless the message was already redelivered.
func settle(ctx context.Context, d amqp.Delivery, handler Handler, logger *zap.Logger) {
	err := handler(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			logger.Warn("ack failed", zap.Error(ackErr))
		}
		return
	}

	requeue := !IsPermanent(err) && !d.Redelivered
	logger.Warn("job failed",
		zap.Error(err),
		zap.Bool("requeue", requeue),
		zap.Bool("redelivered", d.Redelivered))
	if nackErr := d.Nack(false, requeue); nackErr != nil {
		logger.Warn("nack failed", zap.Error(nackErr))
	}
}

// EncodeParseJob marshals a parse job message.
func EncodeParseJob(job types.ParseResumeRequest) ([]byte, error) {
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parse job: %w", err)
	}
	body, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parse job: %w", err)
	}
	return body, nil
}

// DecodeParseJob unmarshals and validates a parse job message. Failures are permanent.
func DecodeParseJob(body []byte) (types.ParseResumeRequest, error) {
	var job types.ParseResumeRequest
	if err := json.Unmarshal(body, &job); err != nil {
		return job, Permanent(fmt.Errorf("failed to decode parse job: %w", err))
	}
	if err := job.Validate(); err != nil {
		return job, Permanent(fmt.Errorf("invalid parse job: %w", err))
	}
	return job, nil
}
