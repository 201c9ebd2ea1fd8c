package health

import (
	"context"
	"strconv"
	"strings"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/registry"
)

type healthUseCase struct {
	registry     registry.CityRegistry
	cacheGateway cache.HealthGateway
}

func NewHealthUseCase(cityRegistry registry.CityRegistry, cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{
		registry:     cityRegistry,
		cacheGateway: cacheGateway,
	}
}

// CheckHealth is DOWN only when an enabled component is DOWN
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	names := useCase.registry.Names()
	registryHealth := model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"cities_total": strconv.Itoa(len(names)),
			"cities":       strings.Join(names, ", "),
		},
	}
	cacheHealth := useCase.cacheGateway.Health(ctx)

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Registry: registryHealth,
		Cache:    cacheHealth,
	}
}
