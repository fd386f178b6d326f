package mqtt

import (
	"context"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
	"isg-mqtt-bridge/internal/logger"
)

// StatusTopic handles status-related publishing (online/offline)
type StatusTopic struct {
	config *config.HAConfig
}

// NewStatusTopic creates a new status topic handler
func NewStatusTopic(config *config.HAConfig) *StatusTopic {
	return &StatusTopic{
		config: config,
	}
}

// PublishDiscovery for status topic (not applicable)
func (s *StatusTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	// Status topics don't need discovery configuration
	return nil
}

// PublishState publishes status; any non-nil true value means online
func (s *StatusTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	online, ok := value.(bool)
	if !ok {
		return fmt.Errorf("status value is not boolean")
	}
	if online {
		return s.PublishOnline(ctx, client)
	}
	return s.PublishOffline(ctx, client)
}

// GetTopicPrefix returns the topic prefix for status topic
func (s *StatusTopic) GetTopicPrefix() string {
	return "status"
}

// PublishOnline publishes online status
func (s *StatusTopic) PublishOnline(ctx context.Context, client paho.Client) error {
	return s.publish(ctx, client, "online")
}

// PublishOffline publishes offline status
func (s *StatusTopic) PublishOffline(ctx context.Context, client paho.Client) error {
	return s.publish(ctx, client, "offline")
}

func (s *StatusTopic) publish(ctx context.Context, client paho.Client, payload string) error {
	if !client.IsConnected() {
		return fmt.Errorf("client not connected")
	}

	token := client.Publish(s.config.StatusTopic, 0, true, payload)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-token.Done():
		if token.Error() != nil {
			return fmt.Errorf("error publishing status: %w", token.Error())
		}
	}

	logger.LogDebug("📡 Published bridge status: %s", payload)
	return nil
}
