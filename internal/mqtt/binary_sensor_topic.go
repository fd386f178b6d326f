package mqtt

import (
	"context"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// BinarySensorTopic handles the operating-state flags (heating, hot
// water, summer mode, cooling). States publish as plain ON/OFF.
type BinarySensorTopic struct {
	*SensorTopic
}

// NewBinarySensorTopic creates a new binary sensor topic handler
func NewBinarySensorTopic(config *config.HAConfig) *BinarySensorTopic {
	return &BinarySensorTopic{
		SensorTopic: NewSensorTopic(config),
	}
}

// PublishDiscovery publishes binary sensor discovery configuration
func (b *BinarySensorTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	cfg := b.buildConfig(sensor)
	cfg.UnitOfMeasurement = ""
	cfg.StateClass = ""
	cfg.ValueTemplate = ""
	cfg.PayloadOn = "ON"
	cfg.PayloadOff = "OFF"
	return publishDiscovery(client, discoveryTopic(b.config, "binary_sensor", sensor.Key), cfg)
}

// PublishState publishes binary sensor state
func (b *BinarySensorTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	if !client.IsConnected() {
		return fmt.Errorf("client is not connected")
	}

	on, ok := value.(bool)
	if !ok {
		return fmt.Errorf("state flag %s is not boolean", sensor.Key)
	}
	payload := "OFF"
	if on {
		payload = "ON"
	}

	token := client.Publish(sensor.StateTopic, 0, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("error publishing state: %w", token.Error())
	}
	return nil
}

// GetTopicPrefix returns the topic prefix for binary sensor topic
func (b *BinarySensorTopic) GetTopicPrefix() string {
	return "binary_sensor"
}
