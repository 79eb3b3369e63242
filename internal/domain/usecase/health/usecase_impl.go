package health

import (
	"context"
	"strconv"

	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/model"
)

type healthUseCase struct {
	screenStore     store.ScreenStore
	providerBaseURL string
	apiKeySet       bool
}

// NewHealthUseCase reports the screen store and whether the provider is configured.
// The provider itself is not called.
func NewHealthUseCase(screenStore store.ScreenStore, providerBaseURL string, apiKeySet bool) UseCase {
	return &healthUseCase{
		screenStore:     screenStore,
		providerBaseURL: providerBaseURL,
		apiKeySet:       apiKeySet,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storeHealth := useCase.screenStore.Health(ctx)
	providerHealth := useCase.providerHealth()

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp || providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Store:    storeHealth,
		Provider: providerHealth,
	}
}

func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	status := model.StatusUp
	if useCase.providerBaseURL == "" || !useCase.apiKeySet {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"base_url":       useCase.providerBaseURL,
			"api_key_loaded": strconv.FormatBool(useCase.apiKeySet),
		},
	}
}
