package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

// LeadRefresher re-runs reconciliation for an email with the stored credential.
type LeadRefresher interface {
	RefreshLead(ctx context.Context, email string) (*entity.Lead, error)
}

// Notifier tells someone a lead was enrolled.
type Notifier interface {
	NotifyEnrollment(ctx context.Context, campaignID int64, lead *entity.Lead) error
}

type Worker struct {
	Channel   *amqp.Channel
	Refresher LeadRefresher
	Notifier  Notifier
	Logger    *zap.Logger
}

func NewWorker(ch *amqp.Channel, refresher LeadRefresher, notifier Notifier, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		Channel:   ch,
		Refresher: refresher,
		Notifier:  notifier,
		Logger:    logger,
	}
}

// Start consumes enrollment events until ctx is done or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	w.Logger.Info("enrollment worker waiting", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.Handle(ctx, d)
		}
	}
}

// Handle acks processed events and dead-letters the ones that cannot be
// processed. A refresh failure is retried once by requeueing.
func (w *Worker) Handle(ctx context.Context, d amqp.Delivery) {
	var payload EnrollmentPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil || payload.Email == "" {
		w.Logger.Error("invalid enrollment event", zap.Error(err))
		d.Nack(false, false)
		return
	}

	lead, err := w.Refresher.RefreshLead(ctx, payload.Email)
	if err != nil {
		w.Logger.Warn("refresh after enrollment failed",
			zap.String("email", payload.Email), zap.Error(err))
		d.Nack(false, !d.Redelivered)
		return
	}
	if lead == nil {
		// Smartlead may not have indexed the lead yet; nothing to report.
		w.Logger.Info("enrolled lead not visible yet", zap.String("email", payload.Email))
		d.Ack(false)
		return
	}

	w.Logger.Info("lead enrollment confirmed",
		zap.String("event_id", payload.EventID),
		zap.String("email", payload.Email),
		zap.Int64("campaign_id", payload.CampaignID),
		zap.Int("campaigns", len(lead.Campaigns)))

	if w.Notifier != nil {
		if err := w.Notifier.NotifyEnrollment(ctx, payload.CampaignID, lead); err != nil {
			w.Logger.Warn("enrollment notice failed", zap.String("email", payload.Email), zap.Error(err))
		}
	}
	d.Ack(false)
}
