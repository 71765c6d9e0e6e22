package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EnrollmentPayload announces that a lead was added to a campaign.
type EnrollmentPayload struct {
	EventID    string    `json:"event_id"`
	CampaignID int64     `json:"campaign_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Publisher is the slice of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishEnrollment(ctx context.Context, payload EnrollmentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal enrollment payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.EventID,
			Timestamp:    payload.EnrolledAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish enrollment: %w", err)
	}
	return nil
}
