package mqtt

import (
	"context"
	"fmt"
	"math"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// TemperatureTopic handles temperature sensor publishing (heating
// circuits, buffer, hot water, outdoor, source).
type TemperatureTopic struct {
	*SensorTopic
}

// NewTemperatureTopic creates a new temperature topic handler
func NewTemperatureTopic(config *config.HAConfig) *TemperatureTopic {
	return &TemperatureTopic{
		SensorTopic: NewSensorTopic(config),
	}
}

// PublishDiscovery publishes temperature sensor discovery configuration
func (t *TemperatureTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	cfg := t.buildConfig(sensor)
	cfg.ValueTemplate = "{{ value_json.value | round(1) }}"
	return publishDiscovery(client, discoveryTopic(t.config, "sensor", sensor.Key), cfg)
}

// PublishState publishes temperature sensor state
func (t *TemperatureTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	if err := validateTemperature(sensor, value); err != nil {
		return err
	}
	return publishSensorState(client, sensor, value)
}

// validateTemperature rejects values outside anything the heat pump can
// physically report. A nil value is valid: the sensor has no reading.
func validateTemperature(sensor *Sensor, value any) error {
	if value == nil {
		return nil
	}
	v, ok := value.(float64)
	if !ok {
		return fmt.Errorf("temperature %s is not numeric", sensor.Key)
	}
	if math.IsNaN(v) || v < -60 || v > 150 {
		return fmt.Errorf("temperature value out of reasonable bounds: %.1f", v)
	}
	return nil
}
