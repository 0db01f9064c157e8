package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/laybeentan/portfolio-api/internal/application/service"
	"github.com/laybeentan/portfolio-api/internal/config"
	"github.com/laybeentan/portfolio-api/internal/domain/contact"
)

const TopicContactEvents = "contact.events"

type contactSubmittedEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type KafkaProducerClient struct {
	ContactEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ContactEventsWriter: contactWriter}, nil
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

// PublishContactSubmitted emits a notification for a stored submission. The
// message body excludes the free-text message; consumers fetch the full
// document when they need it.
func (c *KafkaProducerClient) PublishContactSubmitted(ctx context.Context, sub *contact.ContactSubmission) error {
	payload, err := json.Marshal(contactSubmittedEvent{
		ID:          sub.ID.Hex(),
		Name:        sub.Name,
		Email:       sub.Email,
		Subject:     sub.Subject,
		SubmittedAt: sub.SubmittedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}

	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sub.ID.Hex()),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
}
