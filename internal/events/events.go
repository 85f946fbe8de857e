package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/CodeAdityaP/Pixel/internal/models"
)

// Kafka topics carrying order lifecycle events for downstream consumers
// (fulfillment dashboards, mail senders). Publishing is best-effort:
// a broker outage never fails the customer's request.
const (
	TopicOrderCreated       = "order-created"
	TopicOrderStatusUpdated = "order-status-updated"
)

// Publisher writes order events to Kafka. A nil Publisher is valid and
// publishes nothing, so callers never need to guard their calls.
type Publisher struct {
	createdWriter *kafka.Writer
	statusWriter  *kafka.Writer
}

// NewPublisher creates a publisher with one writer per topic.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		createdWriter: newWriter(brokers, TopicOrderCreated),
		statusWriter:  newWriter(brokers, TopicOrderStatusUpdated),
	}
}

// NewPublisherFromEnv returns a publisher for the KAFKA_BROKER broker
// list, or nil when the variable is unset (events disabled).
func NewPublisherFromEnv() *Publisher {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	log.Println("Order event publishing enabled, broker:", broker)
	return NewPublisher([]string{broker})
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// OrderCreated publishes the full order document keyed by order id.
func (p *Publisher) OrderCreated(ctx context.Context, order *models.Order) {
	if p == nil {
		return
	}
	p.publish(ctx, p.createdWriter, order)
}

// OrderStatusUpdated publishes the updated order document keyed by order id.
func (p *Publisher) OrderStatusUpdated(ctx context.Context, order *models.Order) {
	if p == nil {
		return
	}
	p.publish(ctx, p.statusWriter, order)
}

func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, order *models.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		log.Printf("failed to marshal order event: %v", err)
		return
	}

	message := kafka.Message{
		Key:   []byte(order.ID.Hex()),
		Value: payload,
		Time:  time.Now(),
	}
	if err := writer.WriteMessages(ctx, message); err != nil {
		log.Printf("failed to write order event to kafka: %v", err)
	}
}

// Close flushes and closes the underlying writers.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.createdWriter.Close(); err != nil {
		return err
	}
	return p.statusWriter.Close()
}
