package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "defaults", config: NewRedisConfig()},
		{name: "empty host", config: NewRedisConfig().WithHost(""), wantErr: "host is required"},
		{name: "port too high", config: NewRedisConfig().WithPort(70000), wantErr: "invalid port"},
		{name: "negative database", config: NewRedisConfig().WithDatabase(-1), wantErr: "invalid database"},
		{name: "negative ttl", config: NewRedisConfig().WithDefaultCacheTTL(-time.Second), wantErr: "invalid default cache TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigAddr(t *testing.T) {
	assert.Equal(t, "cache.internal:6380", NewRedisConfig().WithHost("cache.internal").WithPort(6380).Addr())
}

func TestNewClient_RejectsInvalidConfig(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithPort(0))

	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestNewCache_DefaultTTL(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithDefaultCacheTTL(time.Minute))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, time.Minute, NewCache(client, "weather", 0).ttl)
	assert.Equal(t, time.Hour, NewCache(client, "weather", time.Hour).ttl)
	assert.Equal(t, "weather::2643741", NewCache(client, "weather", 0).buildCacheKey("2643741"))
}
