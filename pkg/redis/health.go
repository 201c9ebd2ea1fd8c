package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// Health pings the server and reports pool statistics
func (c *Client) Health(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		return HealthCheck{
			Status:  StatusDown,
			Details: map[string]string{"addr": c.config.Addr(), "message": err.Error()},
		}
	}

	stats := c.rdb.PoolStats()
	return HealthCheck{
		Status: StatusUp,
		Details: map[string]string{
			"addr":        c.config.Addr(),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		},
	}
}
