package mqtt

import (
	"context"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// EnergyTopic handles the kWh amount counters (produced and consumed
// heat, daily and lifetime totals).
type EnergyTopic struct {
	*SensorTopic
}

// NewEnergyTopic creates a new energy topic handler
func NewEnergyTopic(config *config.HAConfig) *EnergyTopic {
	return &EnergyTopic{
		SensorTopic: NewSensorTopic(config),
	}
}

// PublishDiscovery publishes energy sensor discovery configuration
func (e *EnergyTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	cfg := e.buildConfig(sensor)
	// Lifetime counters feed the HA energy dashboard
	if cfg.StateClass == "" {
		cfg.StateClass = "total_increasing"
	}
	return publishDiscovery(client, discoveryTopic(e.config, "sensor", sensor.Key), cfg)
}

// PublishState publishes energy sensor state
func (e *EnergyTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	v, ok := value.(int)
	if !ok {
		return fmt.Errorf("energy counter %s is not an integer", sensor.Key)
	}
	if v < 0 {
		return fmt.Errorf("energy counter %s is negative: %d", sensor.Key, v)
	}
	return publishSensorState(client, sensor, value)
}
