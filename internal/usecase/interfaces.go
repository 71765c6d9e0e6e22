package usecase

import (
	"context"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
	"github.com/xavierca1/smartlead-bridge/internal/infra/queue"
)

// LeadGateway is the read side of Smartlead used by reconciliation.
type LeadGateway interface {
	GetLeadByEmail(ctx context.Context, apiKey, email string) (*entity.Lead, error)
	GetCampaignLeads(ctx context.Context, apiKey string, campaignID int64, offset, limit int) (*entity.RosterPage, error)
}

type CampaignGateway interface {
	ListCampaigns(ctx context.Context, apiKey string) ([]entity.Campaign, error)
	AddLeadToCampaign(ctx context.Context, apiKey string, campaignID int64, lead entity.NewLead) (*entity.AddLeadResult, error)
}

type QueueProducerInterface interface {
	PublishEnrollment(ctx context.Context, payload queue.EnrollmentPayload) error
}

// Recorder receives integration metrics. Implemented by the prometheus middleware.
type Recorder interface {
	RecordRosterResolution(outcome string)
	RecordRosterPage()
	RecordIntegrationError(service string)
	RecordLeadEnrolled()
}

type nopRecorder struct{}

func (nopRecorder) RecordRosterResolution(string) {}
func (nopRecorder) RecordRosterPage()             {}
func (nopRecorder) RecordIntegrationError(string) {}
func (nopRecorder) RecordLeadEnrolled()           {}
