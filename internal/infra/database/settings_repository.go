package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

const apiKeySetting = "smartlead_api_key"

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) SaveCredential(ctx context.Context, apiKey string) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, apiKeySetting, apiKey)
	return err
}

func (r *SettingsRepository) GetCredential(ctx context.Context) (*entity.Credential, error) {
	query := `SELECT value, updated_at FROM app_settings WHERE key = $1`

	var cred entity.Credential
	err := r.DB.QueryRowContext(ctx, query, apiKeySetting).Scan(&cred.APIKey, &cred.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSettingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// MemorySettingsRepository keeps the credential in process when no
// database is configured.
type MemorySettingsRepository struct {
	mu   sync.RWMutex
	cred *entity.Credential
}

func NewMemorySettingsRepository(seed string) *MemorySettingsRepository {
	r := &MemorySettingsRepository{}
	if seed != "" {
		r.cred = &entity.Credential{APIKey: seed, UpdatedAt: time.Now().UTC()}
	}
	return r
}

func (r *MemorySettingsRepository) SaveCredential(_ context.Context, apiKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred = &entity.Credential{APIKey: apiKey, UpdatedAt: time.Now().UTC()}
	return nil
}

func (r *MemorySettingsRepository) GetCredential(_ context.Context) (*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cred == nil {
		return nil, entity.ErrSettingNotFound
	}
	cred := *r.cred
	return &cred, nil
}
