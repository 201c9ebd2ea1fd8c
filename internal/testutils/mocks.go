package testutils

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"

	"github.com/stretchr/testify/mock"
)

type MockWeatherGateway struct {
	mock.Mock
}

func (m *MockWeatherGateway) FetchWeather(ctx context.Context, city entity.City) (*external.RawWeatherResponse, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*external.RawWeatherResponse), args.Error(1)
}

func (m *MockWeatherGateway) ResourceURL() string {
	args := m.Called()
	return args.String(0)
}

type MockPayloadCache struct {
	mock.Mock
}

func (m *MockPayloadCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPayloadCache) Set(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}
