package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

type MockCampaignGateway struct {
	mock.Mock
}

func (m *MockCampaignGateway) ListCampaigns(ctx context.Context, apiKey string) ([]entity.Campaign, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Campaign), args.Error(1)
}

func (m *MockCampaignGateway) AddLeadToCampaign(ctx context.Context, apiKey string, campaignID int64, lead entity.NewLead) (*entity.AddLeadResult, error) {
	args := m.Called(ctx, apiKey, campaignID, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AddLeadResult), args.Error(1)
}

func directory() []entity.Campaign {
	return []entity.Campaign{
		{ID: 3, Name: "acme - Leads", Status: "ACTIVE"},
		{ID: 1, Name: "Zeta outreach", Status: "ACTIVE"},
		{ID: 2, Name: "Acme - Old", Status: "ARCHIVED"},
		{ID: 4, Name: "Beta - Leads", Status: "PAUSED"},
	}
}

func TestListCampaignsUseCase(t *testing.T) {
	tests := []struct {
		name     string
		input    ListCampaignsInput
		wantIDs  []int64
		selected int64
	}{
		{
			name:    "active campaigns sorted by name",
			input:   ListCampaignsInput{APIKey: "key"},
			wantIDs: []int64{3, 4, 1},
		},
		{
			name:    "archived included on request",
			input:   ListCampaignsInput{APIKey: "key", IncludeArchived: true},
			wantIDs: []int64{3, 2, 4, 1},
		},
		{
			name:     "single match is auto selected",
			input:    ListCampaignsInput{APIKey: "key", Query: "ACME leads"},
			wantIDs:  []int64{3},
			selected: 3,
		},
		{
			name:    "no match",
			input:   ListCampaignsInput{APIKey: "key", Query: "gamma"},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := new(MockCampaignGateway)
			gateway.On("ListCampaigns", mock.Anything, "key").Return(directory(), nil)

			uc := NewListCampaignsUseCase(gateway, nil, nil)
			output, err := uc.Execute(context.Background(), tt.input)
			require.NoError(t, err)

			ids := []int64{}
			for _, c := range output.Campaigns {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), output.Total)
			assert.Equal(t, tt.selected, output.AutoSelectedID)
		})
	}
}

func TestListCampaignsUseCaseGatewayError(t *testing.T) {
	gateway := new(MockCampaignGateway)
	upstream := errors.New("Invalid API key")
	gateway.On("ListCampaigns", mock.Anything, "key").Return(nil, upstream)

	metrics := newRecordedMetrics()
	uc := NewListCampaignsUseCase(gateway, metrics, nil)
	_, err := uc.Execute(context.Background(), ListCampaignsInput{APIKey: "key"})

	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, 1, metrics.errors)
}

func TestListCampaignsUseCaseRequiresAPIKey(t *testing.T) {
	gateway := new(MockCampaignGateway)
	uc := NewListCampaignsUseCase(gateway, nil, nil)

	_, err := uc.Execute(context.Background(), ListCampaignsInput{APIKey: "  "})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	gateway.AssertNotCalled(t, "ListCampaigns", mock.Anything, mock.Anything)
}
