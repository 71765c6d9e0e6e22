package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
	"github.com/xavierca1/smartlead-bridge/internal/infra/queue"
)

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishEnrollment(ctx context.Context, payload queue.EnrollmentPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestAddLeadUseCase(t *testing.T) {
	gateway := new(MockCampaignGateway)
	producer := new(MockQueueProducer)

	lead := entity.NewLead{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", CompanyName: "Acme"}
	gateway.On("AddLeadToCampaign", mock.Anything, "key", int64(9), lead).
		Return(&entity.AddLeadResult{Success: true, UploadCount: 1, TotalLeads: 1}, nil)
	producer.On("PublishEnrollment", mock.Anything, mock.MatchedBy(func(p queue.EnrollmentPayload) bool {
		return p.CampaignID == 9 && p.Email == "jane@example.com" && p.EventID != "" && !p.EnrolledAt.IsZero()
	})).Return(nil)

	metrics := newRecordedMetrics()
	uc := NewAddLeadUseCase(gateway, producer, metrics, nil)
	output, err := uc.Execute(context.Background(), AddLeadInput{
		APIKey:      "key",
		CampaignID:  9,
		Email:       " jane@example.com ",
		FirstName:   "Jane",
		LastName:    "Doe",
		CompanyName: "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "Successfully added jane@example.com to campaign!", output.Msg)
	assert.Equal(t, 1, output.Result.UploadCount)
	assert.NotEmpty(t, output.EventID)
	assert.Equal(t, 1, metrics.enrolled)
	gateway.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestAddLeadUseCaseSplitsDisplayName(t *testing.T) {
	gateway := new(MockCampaignGateway)
	gateway.On("AddLeadToCampaign", mock.Anything, "key", int64(9), entity.NewLead{
		Email: "jane@example.com", FirstName: "Jane", LastName: "van der Berg",
	}).Return(&entity.AddLeadResult{Success: true}, nil)

	uc := NewAddLeadUseCase(gateway, nil, nil, nil)
	output, err := uc.Execute(context.Background(), AddLeadInput{
		APIKey:      "key",
		CampaignID:  9,
		Email:       "jane@example.com",
		DisplayName: "Jane van der Berg",
	})

	require.NoError(t, err)
	assert.Empty(t, output.EventID)
	gateway.AssertExpectations(t)
}

func TestAddLeadUseCasePublishFailureKeepsTheAdd(t *testing.T) {
	gateway := new(MockCampaignGateway)
	producer := new(MockQueueProducer)
	gateway.On("AddLeadToCampaign", mock.Anything, "key", int64(9), mock.Anything).
		Return(&entity.AddLeadResult{Success: true}, nil)
	producer.On("PublishEnrollment", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	metrics := newRecordedMetrics()
	uc := NewAddLeadUseCase(gateway, producer, metrics, nil)
	output, err := uc.Execute(context.Background(), AddLeadInput{APIKey: "key", CampaignID: 9, Email: "jane@example.com"})

	require.NoError(t, err)
	assert.Empty(t, output.EventID)
	assert.Equal(t, 1, metrics.errors)
	assert.Equal(t, 1, metrics.enrolled)
}

func TestAddLeadUseCaseGatewayError(t *testing.T) {
	gateway := new(MockCampaignGateway)
	producer := new(MockQueueProducer)
	upstream := errors.New("Campaign is archived")
	gateway.On("AddLeadToCampaign", mock.Anything, "key", int64(9), mock.Anything).Return(nil, upstream)

	uc := NewAddLeadUseCase(gateway, producer, nil, nil)
	_, err := uc.Execute(context.Background(), AddLeadInput{APIKey: "key", CampaignID: 9, Email: "jane@example.com"})

	assert.ErrorIs(t, err, upstream)
	producer.AssertNotCalled(t, "PublishEnrollment", mock.Anything, mock.Anything)
}

func TestAddLeadUseCaseValidation(t *testing.T) {
	gateway := new(MockCampaignGateway)
	uc := NewAddLeadUseCase(gateway, nil, nil, nil)

	_, err := uc.Execute(context.Background(), AddLeadInput{APIKey: "key", CampaignID: 0, Email: "nope"})
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)

	_, err = uc.Execute(context.Background(), AddLeadInput{CampaignID: 9, Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	gateway.AssertNotCalled(t, "AddLeadToCampaign", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
