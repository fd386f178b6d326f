package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"isg-mqtt-bridge/internal/config"
	"isg-mqtt-bridge/internal/logger"
)

// DiagnosticTopic handles Home Assistant diagnostic sensor publishing.
// The bridge reports coded conditions here (poll failures, reconnects),
// plus the controller model read from the ISG.
type DiagnosticTopic struct {
	config *config.HAConfig
}

// NewDiagnosticTopic creates a new diagnostic topic handler
func NewDiagnosticTopic(config *config.HAConfig) *DiagnosticTopic {
	return &DiagnosticTopic{
		config: config,
	}
}

// PublishDiscovery publishes diagnostic discovery configuration
func (d *DiagnosticTopic) PublishDiscovery(ctx context.Context, client paho.Client, sensor *Sensor) error {
	cfg := SensorConfig{
		Name:                   "Diagnostic",
		UniqueID:               fmt.Sprintf("%s_diagnostic", d.config.DeviceID),
		StateTopic:             d.config.DiagnosticTopic,
		DeviceClass:            "enum",
		Device:                 deviceInfo(d.config),
		ValueTemplate:          "{{ value_json.message }}",
		AvailabilityTopic:      d.config.StatusTopic,
		PayloadAvailable:       "online",
		PayloadNotAvailable:    "offline",
		JSONAttributesTemplate: "{{ value_json | tojson }}",
		EntityCategory:         "diagnostic",
	}

	topic := fmt.Sprintf("%s/sensor/%s_diagnostic/config", d.config.DiscoveryPrefix, d.config.DeviceID)
	logger.LogDebug("📡 Publishing diagnostic discovery: %s", topic)
	return publishDiscovery(client, topic, cfg)
}

// PublishState publishes a diagnostic; value carries the message text
func (d *DiagnosticTopic) PublishState(ctx context.Context, client paho.Client, sensor *Sensor, value any) error {
	message, ok := value.(string)
	if !ok {
		return fmt.Errorf("diagnostic message is not a string")
	}
	return d.PublishDiagnostic(ctx, client, 0, message)
}

// GetTopicPrefix returns the topic prefix for diagnostic topic
func (d *DiagnosticTopic) GetTopicPrefix() string {
	return "diagnostic"
}

// PublishDiagnostic publishes diagnostic information with code and message
func (d *DiagnosticTopic) PublishDiagnostic(ctx context.Context, client paho.Client, code int, message string) error {
	if !client.IsConnected() {
		return fmt.Errorf("client not connected")
	}
	if message == "" {
		return fmt.Errorf("diagnostic message is empty")
	}

	diagnostic := map[string]interface{}{
		"code":      code,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(diagnostic)
	if err != nil {
		return fmt.Errorf("error marshaling diagnostic: %w", err)
	}

	token := client.Publish(d.config.DiagnosticTopic, 0, false, payload)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-token.Done():
		if token.Error() != nil {
			return fmt.Errorf("error publishing diagnostic: %w", token.Error())
		}
	}

	logger.LogDebug("🔧 Published diagnostic: [%d] %s", code, message)
	return nil
}
