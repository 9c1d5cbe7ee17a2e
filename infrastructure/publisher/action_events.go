package publisher

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"github.com/vfg2006/customer360-api/internal/config"
	"github.com/vfg2006/customer360-api/internal/domain"
	"github.com/vfg2006/customer360-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrPublisherClosed = errors.New("publisher: closed")

// ActionPublisher announces every action command that reached a final result.
type ActionPublisher interface {
	Publish(ctx context.Context, event domain.ActionEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	mu     sync.Mutex
	closed bool
}

// NewActionPublisher writes events to the configured Kafka topic. Without
// brokers it returns a publisher that only logs.
func NewActionPublisher(cfg config.Actions) ActionPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return noopPublisher{}
	}

	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Gzip,
		RequiredAcks: kafka.RequireAll,
	})
}

func newKafkaPublisher(w messageWriter) *kafkaPublisher {
	return &kafkaPublisher{writer: w}
}

// Publish keys the message by customer so one customer's events stay ordered.
func (p *kafkaPublisher) Publish(ctx context.Context, event domain.ActionEvent) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPublisherClosed
	}
	p.mu.Unlock()

	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "publisher: encode action event")
	}

	key := event.CustomerID
	if key == "" {
		key = event.ActionID
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "outcome", Value: []byte(event.Outcome)},
			{Key: log.CorrelationHeader, Value: []byte(log.GetCorrelationID(ctx))},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "publisher: write action %s", event.ActionID)
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	return p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event domain.ActionEvent) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"action_id": event.ActionID,
		"outcome":   event.Outcome,
	}).Debug("publisher: no brokers configured, action event dropped")
	return nil
}

func (noopPublisher) Close() error { return nil }
