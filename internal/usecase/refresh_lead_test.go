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

func newRefreshFixture(lead *entity.Lead, lookupErr error) (*RefreshLeadUseCase, *MockLeadGateway) {
	repo := new(MockSettingsRepository)
	repo.On("GetCredential", mock.Anything).Return(&entity.Credential{APIKey: "stored"}, nil)

	gateway := new(MockLeadGateway)
	gateway.On("GetLeadByEmail", mock.Anything, "stored", "jane@example.com").Return(lead, lookupErr)

	return NewRefreshLeadUseCase(NewSettingsUseCase(repo), NewResolveLeadUseCase(gateway, nil, nil)), gateway
}

func TestRefreshLeadUsesStoredKey(t *testing.T) {
	uc, gateway := newRefreshFixture(&entity.Lead{ID: 1, Email: "jane@example.com"}, nil)

	lead, err := uc.RefreshLead(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, int64(1), lead.ID)
	gateway.AssertExpectations(t)
}

func TestRefreshLeadAbsent(t *testing.T) {
	uc, _ := newRefreshFixture(nil, nil)

	lead, err := uc.RefreshLead(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Nil(t, lead)
}

func TestRefreshLeadLookupFailureIsRetryable(t *testing.T) {
	uc, _ := newRefreshFixture(nil, errors.New("503"))

	_, err := uc.RefreshLead(context.Background(), "jane@example.com")
	var te *TechnicalError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "LOOKUP_FAILED", te.Code)
}

func TestRefreshLeadWithoutStoredKey(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("GetCredential", mock.Anything).Return(nil, entity.ErrSettingNotFound)
	gateway := new(MockLeadGateway)
	uc := NewRefreshLeadUseCase(NewSettingsUseCase(repo), NewResolveLeadUseCase(gateway, nil, nil))

	_, err := uc.RefreshLead(context.Background(), "jane@example.com")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	gateway.AssertNotCalled(t, "GetLeadByEmail", mock.Anything, mock.Anything, mock.Anything)
}
