package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
	"github.com/xavierca1/smartlead-bridge/internal/infra/queue"
)

type AddLeadUseCase struct {
	Gateway  CampaignGateway
	Queue    QueueProducerInterface
	Recorder Recorder
	Logger   *zap.Logger
}

func NewAddLeadUseCase(gateway CampaignGateway, producer QueueProducerInterface, recorder Recorder, logger *zap.Logger) *AddLeadUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddLeadUseCase{Gateway: gateway, Queue: producer, Recorder: recorder, Logger: logger}
}

// Execute enrolls the contact in a campaign. Remote failures come back
// wrapping *smartlead.RemoteError so the task pane can show the upstream
// message. Enrolling twice is left to Smartlead, which updates in place.
func (uc *AddLeadUseCase) Execute(ctx context.Context, input AddLeadInput) (*AddLeadOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if errs := ValidateAddLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	if err := validateAPIKey(input.APIKey); err != nil {
		return nil, err
	}

	firstName, lastName := input.FirstName, input.LastName
	if firstName == "" && lastName == "" {
		firstName, lastName = entity.ParseDisplayName(input.DisplayName)
	}

	lead := entity.NewLead{
		Email:       input.Email,
		FirstName:   firstName,
		LastName:    lastName,
		CompanyName: input.CompanyName,
	}

	result, err := uc.Gateway.AddLeadToCampaign(ctx, input.APIKey, input.CampaignID, lead)
	if err != nil {
		uc.Logger.Error("add lead to campaign failed",
			zap.Int64("campaign_id", input.CampaignID),
			zap.String("email", input.Email),
			zap.Error(err))
		uc.Recorder.RecordIntegrationError("smartlead")
		return nil, fmt.Errorf("add lead to campaign: %w", err)
	}
	uc.Recorder.RecordLeadEnrolled()

	output := &AddLeadOutput{
		CampaignID: input.CampaignID,
		Email:      input.Email,
		Msg:        fmt.Sprintf("Successfully added %s to campaign!", input.Email),
		Result:     result,
	}

	// The event only triggers a refresh downstream; losing it never fails the add.
	if uc.Queue != nil {
		payload := queue.EnrollmentPayload{
			EventID:    uuid.NewString(),
			CampaignID: input.CampaignID,
			Email:      input.Email,
			FirstName:  firstName,
			LastName:   lastName,
			EnrolledAt: time.Now().UTC(),
		}
		if err := uc.Queue.PublishEnrollment(ctx, payload); err != nil {
			uc.Logger.Warn("publish enrollment event failed",
				zap.String("email", input.Email), zap.Error(err))
			uc.Recorder.RecordIntegrationError("rabbitmq")
		} else {
			output.EventID = payload.EventID
		}
	}

	return output, nil
}
