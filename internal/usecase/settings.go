package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

const (
	SourceHeader = "header"
	SourceStored = "stored"
)

// SettingsUseCase owns the single stored Smartlead credential.
type SettingsUseCase struct {
	Repo entity.SettingsRepositoryInterface
}

func NewSettingsUseCase(repo entity.SettingsRepositoryInterface) *SettingsUseCase {
	return &SettingsUseCase{Repo: repo}
}

func (uc *SettingsUseCase) SaveAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ValidationError{"api_key", "is required"}
	}
	if err := uc.Repo.SaveCredential(ctx, apiKey); err != nil {
		return &TechnicalError{Code: "SETTINGS_WRITE", Message: "failed to save api key", Err: err}
	}
	return nil
}

// APIKey picks the credential for one call: an explicit override first,
// then the stored key.
func (uc *SettingsUseCase) APIKey(ctx context.Context, override string) (string, string, error) {
	if key := strings.TrimSpace(override); key != "" {
		return key, SourceHeader, nil
	}
	cred, err := uc.Repo.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrSettingNotFound) {
			return "", "", ErrMissingAPIKey
		}
		return "", "", &TechnicalError{Code: "SETTINGS_READ", Message: "failed to load api key", Err: err}
	}
	if strings.TrimSpace(cred.APIKey) == "" {
		return "", "", ErrMissingAPIKey
	}
	return cred.APIKey, SourceStored, nil
}

func (uc *SettingsUseCase) Status(ctx context.Context, override string) (*SettingsStatus, error) {
	key, source, err := uc.APIKey(ctx, override)
	if err != nil {
		if IsDomainError(err) {
			return &SettingsStatus{Configured: false}, nil
		}
		return nil, err
	}
	return &SettingsStatus{Configured: true, MaskedKey: MaskAPIKey(key), Source: source}, nil
}

// MaskAPIKey keeps the last four characters.
func MaskAPIKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
