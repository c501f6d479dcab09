package external

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"myweather.app/internal/config"
	"myweather.app/internal/mocks"
	"myweather.app/pkg/errors"
)

func TestStatePublisherFactory_CreateStatePublisher(t *testing.T) {
	factory := NewStatePublisherFactory()
	_, redisConfig := setupMockRedis(t)

	tests := []struct {
		name         string
		config       *config.PublisherConfig
		expectError  bool
		expectedType string
	}{
		{name: "NilConfig", config: nil, expectError: true},
		{
			name:         "LogPublisher",
			config:       &config.PublisherConfig{Type: config.PublisherTypeLog, Channel: "state"},
			expectedType: "*external.LogStatePublisher",
		},
		{
			name:         "RedisPublisher",
			config:       &config.PublisherConfig{Type: config.PublisherTypeRedis, Channel: "state", Redis: *redisConfig},
			expectedType: "*external.RedisStatePublisher",
		},
		{
			name:        "UnknownType",
			config:      &config.PublisherConfig{Type: config.PublisherTypeUnknown},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := factory.CreateStatePublisher(tt.config, mocks.NewLogger(t))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, publisher)
				assert.True(t, errors.IsConfigurationError(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			assert.Equal(t, tt.expectedType, fmt.Sprintf("%T", publisher))
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestStatePublisherFactory_RedisUnreachable(t *testing.T) {
	factory := NewStatePublisherFactory()

	publisher, err := factory.CreateStatePublisher(&config.PublisherConfig{
		Type:    config.PublisherTypeRedis,
		Channel: "state",
		Redis:   config.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
	}, mocks.NewLogger(t))

	assert.Error(t, err)
	assert.Nil(t, publisher)
}

func TestLogStatePublisher_Publish(t *testing.T) {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug("State snapshot published", mock.Anything, mock.Anything).Once()

	publisher := NewLogStatePublisher(logger)
	ctx := context.Background()

	assert.NoError(t, publisher.Publish(ctx, []byte(`{"isLoading":true}`)))
	assert.NoError(t, publisher.Ping(ctx))
	assert.NoError(t, publisher.Close())
}
