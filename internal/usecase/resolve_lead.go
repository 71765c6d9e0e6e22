package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

const (
	RosterPageSize = 100

	RosterMatched  = "matched"
	RosterNotFound = "not_found"
	RosterFailed   = "failed"
)

// ResolveLeadUseCase looks a lead up by email and dates each of its campaign
// memberships from that campaign's own roster.
type ResolveLeadUseCase struct {
	Gateway  LeadGateway
	Recorder Recorder
	Logger   *zap.Logger
	PageSize int
}

func NewResolveLeadUseCase(gateway LeadGateway, recorder Recorder, logger *zap.Logger) *ResolveLeadUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolveLeadUseCase{
		Gateway:  gateway,
		Recorder: recorder,
		Logger:   logger,
		PageSize: RosterPageSize,
	}
}

// Execute never fails because of Smartlead: a failed lookup is reported as
// an absent lead with OutcomeLookupFailed. Only bad input returns an error.
func (uc *ResolveLeadUseCase) Execute(ctx context.Context, input ResolveLeadInput) (*ResolveLeadOutput, error) {
	email := strings.TrimSpace(input.Email)
	if verr := ValidateEmail(email); verr != nil {
		return nil, *verr
	}
	if err := validateAPIKey(input.APIKey); err != nil {
		return nil, err
	}

	output := &ResolveLeadOutput{Email: email, Outcome: OutcomeNotFound}

	lead, err := uc.Gateway.GetLeadByEmail(ctx, input.APIKey, email)
	if err != nil {
		uc.Logger.Warn("lead lookup failed, treating as absent",
			zap.String("email", email), zap.Error(err))
		uc.Recorder.RecordIntegrationError("smartlead")
		output.Outcome = OutcomeLookupFailed
		return output, nil
	}
	if lead == nil {
		return output, nil
	}

	output.Outcome = OutcomeFound
	output.SuggestedSearch = entity.SuggestedSearch(lead.Campaigns)

	if len(lead.Campaigns) > 0 {
		key := lead.Email
		if key == "" {
			key = email
		}
		// Roster calls outlive the caller: each one is bounded by its own timeout.
		lead.Campaigns = uc.resolveMemberships(context.WithoutCancel(ctx), input.APIKey, key, lead.Campaigns)
		entity.SortMemberships(lead.Campaigns)
	} else if lead.Campaigns == nil {
		lead.Campaigns = []entity.CampaignMembership{}
	}

	output.Lead = lead
	output.ProfileURL = lead.ProfileURL()
	output.HasLeadsCampaign = lead.HasLeadsCampaign()
	return output, nil
}

// resolveMemberships dates every membership concurrently. Results come back
// in input order regardless of which fetch finishes first.
func (uc *ResolveLeadUseCase) resolveMemberships(ctx context.Context, apiKey, email string, memberships []entity.CampaignMembership) []entity.CampaignMembership {
	resolved := make([]entity.CampaignMembership, len(memberships))

	var g errgroup.Group
	for i := range memberships {
		i := i
		g.Go(func() error {
			resolved[i] = uc.resolveMembership(ctx, apiKey, email, memberships[i])
			return nil
		})
	}
	_ = g.Wait()

	return resolved
}

// resolveMembership pages through one campaign roster until it finds the
// lead or reaches the total reported by the first page. Any failure leaves
// the membership undated.
func (uc *ResolveLeadUseCase) resolveMembership(ctx context.Context, apiKey, email string, m entity.CampaignMembership) entity.CampaignMembership {
	pageSize := uc.PageSize
	if pageSize <= 0 || pageSize > RosterPageSize {
		pageSize = RosterPageSize
	}

	total := 0
	for offset := 0; ; offset += pageSize {
		page, err := uc.Gateway.GetCampaignLeads(ctx, apiKey, m.CampaignID, offset, pageSize)
		if err != nil {
			uc.Logger.Warn("campaign roster fetch failed",
				zap.Int64("campaign_id", m.CampaignID),
				zap.Int("offset", offset),
				zap.Error(err))
			uc.Recorder.RecordIntegrationError("smartlead")
			uc.Recorder.RecordRosterResolution(RosterFailed)
			return m
		}
		uc.Recorder.RecordRosterPage()

		if offset == 0 {
			total = page.Total
			if total <= 0 {
				uc.Recorder.RecordRosterResolution(RosterNotFound)
				return m
			}
		}

		if entry, ok := page.Find(email); ok {
			m.EnrolledAt = entry.EnrolledAt
			uc.Recorder.RecordRosterResolution(RosterMatched)
			return m
		}

		if offset+pageSize >= total {
			uc.Logger.Debug("lead not on campaign roster",
				zap.Int64("campaign_id", m.CampaignID),
				zap.Int("total", total))
			uc.Recorder.RecordRosterResolution(RosterNotFound)
			return m
		}
	}
}
