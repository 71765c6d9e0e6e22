package usecase

import (
	"context"

	"github.com/xavierca1/smartlead-bridge/internal/entity"
)

// RefreshLeadUseCase re-runs reconciliation with the stored credential. The
// enrollment worker uses it to observe the effect of an add.
type RefreshLeadUseCase struct {
	Settings *SettingsUseCase
	Resolver *ResolveLeadUseCase
}

func NewRefreshLeadUseCase(settings *SettingsUseCase, resolver *ResolveLeadUseCase) *RefreshLeadUseCase {
	return &RefreshLeadUseCase{Settings: settings, Resolver: resolver}
}

func (uc *RefreshLeadUseCase) RefreshLead(ctx context.Context, email string) (*entity.Lead, error) {
	apiKey, _, err := uc.Settings.APIKey(ctx, "")
	if err != nil {
		return nil, err
	}
	output, err := uc.Resolver.Execute(ctx, ResolveLeadInput{APIKey: apiKey, Email: email})
	if err != nil {
		return nil, err
	}
	if output.Outcome == OutcomeLookupFailed {
		return nil, &TechnicalError{Code: "LOOKUP_FAILED", Message: "lead lookup failed"}
	}
	return output.Lead, nil
}
