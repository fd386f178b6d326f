package mqtt

import (
	"context"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
)

// Sensor describes how one reading key surfaces in Home Assistant.
type Sensor struct {
	Key         string // reading key, also the last topic segment
	Name        string
	Unit        string
	DeviceClass string
	StateClass  string
	Category    string // entity_category, e.g. "diagnostic"
	Handler     string // topic handler name, see NewTopicContext
	StateTopic  string
}

// TopicHandler defines the interface for different topic handlers
type TopicHandler interface {
	PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error
	PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error
	GetTopicPrefix() string
}

// TopicContext manages the topic handlers
type TopicContext struct {
	handlers map[string]TopicHandler
	config   *config.HAConfig
}

// NewTopicContext creates a new topic context with all handlers
func NewTopicContext(haCfg *config.HAConfig) *TopicContext {
	ctx := &TopicContext{
		handlers: make(map[string]TopicHandler),
		config:   haCfg,
	}

	// Register all topic handlers
	ctx.handlers["temperature"] = NewTemperatureTopic(haCfg)
	ctx.handlers["humidity"] = NewHumidityTopic(haCfg)
	ctx.handlers["energy"] = NewEnergyTopic(haCfg)
	ctx.handlers["power"] = NewPowerTopic(haCfg)
	ctx.handlers["binary_sensor"] = NewBinarySensorTopic(haCfg)
	ctx.handlers["sensor"] = NewSensorTopic(haCfg) // Keep as fallback
	ctx.handlers["status"] = NewStatusTopic(haCfg)
	ctx.handlers["diagnostic"] = NewDiagnosticTopic(haCfg)

	return ctx
}

// GetHandler returns the appropriate handler for a given topic type
func (tc *TopicContext) GetHandler(topicType string) TopicHandler {
	if handler, exists := tc.handlers[topicType]; exists {
		return handler
	}
	// Default to sensor handler
	return tc.handlers["sensor"]
}

// RegisterHandler allows registering custom topic handlers
func (tc *TopicContext) RegisterHandler(name string, handler TopicHandler) {
	tc.handlers[name] = handler
}

// SensorConfig is a Home Assistant MQTT discovery payload for a sensor
// or binary_sensor entity.
type SensorConfig struct {
	Name                   string     `json:"name"`
	UniqueID               string     `json:"unique_id"`
	StateTopic             string     `json:"state_topic"`
	UnitOfMeasurement      string     `json:"unit_of_measurement,omitempty"`
	DeviceClass            string     `json:"device_class,omitempty"`
	StateClass             string     `json:"state_class,omitempty"`
	Device                 DeviceInfo `json:"device"`
	ValueTemplate          string     `json:"value_template,omitempty"`
	AvailabilityTopic      string     `json:"availability_topic"`
	PayloadAvailable       string     `json:"payload_available"`
	PayloadNotAvailable    string     `json:"payload_not_available"`
	PayloadOn              string     `json:"payload_on,omitempty"`
	PayloadOff             string     `json:"payload_off,omitempty"`
	JSONAttributesTemplate string     `json:"json_attributes_template,omitempty"`
	EntityCategory         string     `json:"entity_category,omitempty"`
}

// DeviceInfo information about the device
type DeviceInfo struct {
	Name         string   `json:"name"`
	Identifiers  []string `json:"identifiers"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
}

// SensorState is the state payload published for sensor entities. Value
// is null when the device reported no reading; Home Assistant then shows
// the entity as unknown.
type SensorState struct {
	Value     any       `json:"value"`
	Unit      string    `json:"unit,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// discoveryTopic builds the HA discovery topic for one entity.
func discoveryTopic(cfg *config.HAConfig, component, key string) string {
	return cfg.DiscoveryPrefix + "/" + component + "/" + cfg.DeviceID + "_" + key + "/config"
}

// deviceInfo builds the shared device block of a discovery payload.
func deviceInfo(cfg *config.HAConfig) DeviceInfo {
	return DeviceInfo{
		Name:         cfg.DeviceName,
		Identifiers:  []string{cfg.DeviceID},
		Manufacturer: cfg.Manufacturer,
		Model:        cfg.Model,
	}
}
