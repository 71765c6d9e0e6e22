package entity

import (
	"context"
	"errors"
	"time"
)

var ErrSettingNotFound = errors.New("setting not found")

// Credential is the single Smartlead API key the task pane stores.
type Credential struct {
	APIKey    string    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingsRepositoryInterface interface {
	SaveCredential(ctx context.Context, apiKey string) error
	GetCredential(ctx context.Context) (*Credential, error)
}
