package cache

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// RedisHealthGateway reports the payload cache. A nil client means caching is turned off.
type RedisHealthGateway struct {
	client *redis.Client
}

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusDisabled,
			Details: map[string]string{"message": "Cache is disabled"},
		}
	}

	check := gateway.client.Health(ctx)
	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
