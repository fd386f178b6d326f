package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// SensorTopic handles generic sensor publishing. The typed handlers
// embed it and override the discovery payload.
type SensorTopic struct {
	config *config.HAConfig
}

// NewSensorTopic creates a new sensor topic handler
func NewSensorTopic(config *config.HAConfig) *SensorTopic {
	return &SensorTopic{
		config: config,
	}
}

// PublishDiscovery publishes sensor discovery configuration
func (s *SensorTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	return publishDiscovery(client, discoveryTopic(s.config, "sensor", sensor.Key), s.buildConfig(sensor))
}

// PublishState publishes sensor state
func (s *SensorTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	return publishSensorState(client, sensor, value)
}

// GetTopicPrefix returns the topic prefix for sensor topic
func (s *SensorTopic) GetTopicPrefix() string {
	return "sensor"
}

// buildConfig builds the discovery payload for a generic sensor.
func (s *SensorTopic) buildConfig(sensor *Sensor) SensorConfig {
	return SensorConfig{
		Name:                sensor.Name,
		UniqueID:            fmt.Sprintf("%s_%s", s.config.DeviceID, sensor.Key),
		StateTopic:          sensor.StateTopic,
		UnitOfMeasurement:   sensor.Unit,
		DeviceClass:         sensor.DeviceClass,
		StateClass:          sensor.StateClass,
		Device:              deviceInfo(s.config),
		ValueTemplate:       "{{ value_json.value }}",
		AvailabilityTopic:   s.config.StatusTopic,
		PayloadAvailable:    "online",
		PayloadNotAvailable: "offline",
		EntityCategory:      sensor.Category,
	}
}

// publishDiscovery serializes and publishes a retained discovery payload.
func publishDiscovery(client paho.Client, topic string, cfg SensorConfig) error {
	if !client.IsConnected() {
		return fmt.Errorf("client is not connected")
	}

	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	token := client.Publish(topic, 0, true, configJSON)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("error publishing discovery: %w", token.Error())
	}

	return nil
}

// publishSensorState publishes the JSON state payload for one sensor.
func publishSensorState(client paho.Client, sensor *Sensor, value any) error {
	if !client.IsConnected() {
		return fmt.Errorf("client is not connected")
	}

	sensorData := SensorState{
		Value:     value,
		Unit:      sensor.Unit,
		Timestamp: time.Now(),
	}

	dataJSON, err := json.Marshal(sensorData)
	if err != nil {
		return fmt.Errorf("error serializing data: %w", err)
	}

	token := client.Publish(sensor.StateTopic, 0, false, dataJSON)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("error publishing state: %w", token.Error())
	}

	return nil
}
