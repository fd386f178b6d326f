package mqtt

import (
	"context"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// PowerTopic handles the estimated compressor power draw.
type PowerTopic struct {
	*SensorTopic
}

// NewPowerTopic creates a new power topic handler
func NewPowerTopic(config *config.HAConfig) *PowerTopic {
	return &PowerTopic{
		SensorTopic: NewSensorTopic(config),
	}
}

// PublishDiscovery publishes power sensor discovery configuration
func (p *PowerTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	cfg := p.buildConfig(sensor)
	cfg.ValueTemplate = "{{ value_json.value | round(0) }}"
	if cfg.StateClass == "" {
		cfg.StateClass = "measurement"
	}
	return publishDiscovery(client, discoveryTopic(p.config, "sensor", sensor.Key), cfg)
}

// PublishState publishes power sensor state
func (p *PowerTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	v, ok := value.(float64)
	if !ok {
		return fmt.Errorf("power %s is not numeric", sensor.Key)
	}
	if v < 0 {
		return fmt.Errorf("negative power value: %.1f", v)
	}
	return publishSensorState(client, sensor, value)
}
