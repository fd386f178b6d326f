package mqtt

import (
	"context"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// HumidityTopic handles relative humidity sensor publishing.
type HumidityTopic struct {
	*SensorTopic
}

// NewHumidityTopic creates a new humidity topic handler
func NewHumidityTopic(config *config.HAConfig) *HumidityTopic {
	return &HumidityTopic{
		SensorTopic: NewSensorTopic(config),
	}
}

// PublishDiscovery publishes humidity sensor discovery configuration
func (h *HumidityTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	cfg := h.buildConfig(sensor)
	cfg.ValueTemplate = "{{ value_json.value | round(1) }}"
	return publishDiscovery(client, discoveryTopic(h.config, "sensor", sensor.Key), cfg)
}

// PublishState publishes humidity sensor state
func (h *HumidityTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	if err := validateHumidity(sensor, value); err != nil {
		return err
	}
	return publishSensorState(client, sensor, value)
}

// validateHumidity rejects values outside 0..100 percent. A nil value is
// valid: the sensor has no reading.
func validateHumidity(sensor *Sensor, value any) error {
	if value == nil {
		return nil
	}
	v, ok := value.(float64)
	if !ok {
		return fmt.Errorf("humidity %s is not numeric", sensor.Key)
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("humidity value out of reasonable bounds: %.1f", v)
	}
	return nil
}
