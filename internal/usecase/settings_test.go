package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) SaveCredential(ctx context.Context, apiKey string) error {
	args := m.Called(ctx, apiKey)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetCredential(ctx context.Context) (*entity.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Credential), args.Error(1)
}

func TestSettingsUseCaseAPIKey(t *testing.T) {
	t.Run("header override wins", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		uc := NewSettingsUseCase(repo)

		key, source, err := uc.APIKey(context.Background(), " header-key ")
		require.NoError(t, err)
		assert.Equal(t, "header-key", key)
		assert.Equal(t, SourceHeader, source)
		repo.AssertNotCalled(t, "GetCredential", mock.Anything)
	})

	t.Run("stored key", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetCredential", mock.Anything).Return(&entity.Credential{APIKey: "stored-key", UpdatedAt: time.Now()}, nil)
		uc := NewSettingsUseCase(repo)

		key, source, err := uc.APIKey(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "stored-key", key)
		assert.Equal(t, SourceStored, source)
	})

	t.Run("nothing stored", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetCredential", mock.Anything).Return(nil, entity.ErrSettingNotFound)
		uc := NewSettingsUseCase(repo)

		_, _, err := uc.APIKey(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("blank stored key", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetCredential", mock.Anything).Return(&entity.Credential{APIKey: " "}, nil)
		uc := NewSettingsUseCase(repo)

		_, _, err := uc.APIKey(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := new(MockSettingsRepository)
		repo.On("GetCredential", mock.Anything).Return(nil, errors.New("connection refused"))
		uc := NewSettingsUseCase(repo)

		_, _, err := uc.APIKey(context.Background(), "")
		assert.True(t, IsTechnicalError(err))
		assert.False(t, IsDomainError(err))
	})
}

func TestSettingsUseCaseSaveAPIKey(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("SaveCredential", mock.Anything, "new-key").Return(nil).Once()
	uc := NewSettingsUseCase(repo)

	require.NoError(t, uc.SaveAPIKey(context.Background(), "  new-key\n"))

	var verr ValidationError
	assert.True(t, errors.As(uc.SaveAPIKey(context.Background(), "   "), &verr))
	repo.AssertExpectations(t)

	failing := new(MockSettingsRepository)
	failing.On("SaveCredential", mock.Anything, "k").Return(errors.New("disk full"))
	err := NewSettingsUseCase(failing).SaveAPIKey(context.Background(), "k")
	var te *TechnicalError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "SETTINGS_WRITE", te.Code)
}

func TestSettingsUseCaseStatus(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("GetCredential", mock.Anything).Return(nil, entity.ErrSettingNotFound)
	uc := NewSettingsUseCase(repo)

	status, err := uc.Status(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, status.Configured)

	status, err = uc.Status(context.Background(), "abcdefgh1234")
	require.NoError(t, err)
	assert.True(t, status.Configured)
	assert.Equal(t, "********1234", status.MaskedKey)
	assert.Equal(t, SourceHeader, status.Source)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "", MaskAPIKey(""))
	assert.Equal(t, "***", MaskAPIKey("abc"))
	assert.Equal(t, "****", MaskAPIKey("abcd"))
	assert.Equal(t, "*bcde", MaskAPIKey("abcde"))
}
