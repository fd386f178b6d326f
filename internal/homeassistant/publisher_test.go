package homeassistant

import (
	"strings"
	"testing"

	"isg-mqtt-bridge/internal/config"
)

// TestPublisherSensors tests that the publisher serves the catalog rooted
// at the configured base topic
func TestPublisherSensors(t *testing.T) {
	mqttCfg := &config.MQTTConfig{
		Broker:    "test.mosquitto.org",
		Port:      1883,
		ClientID:  "test-client",
		BaseTopic: "test_isg",
	}
	haCfg := &config.HAConfig{
		DiscoveryPrefix: "homeassistant",
		DeviceID:        "test_isg",
		StatusTopic:     "test_isg/status",
		DiagnosticTopic: "test_isg/diagnostic",
	}

	p := NewPublisher(mqttCfg, haCfg)

	sensors := p.Sensors()
	if len(sensors) != len(BuildSensors("test_isg")) {
		t.Fatalf("expected the full catalog, got %d entries", len(sensors))
	}
	for _, s := range sensors {
		if !strings.HasPrefix(s.StateTopic, "test_isg/") {
			t.Errorf("%s: expected state topic under the configured base topic, got %s", s.Key, s.StateTopic)
		}
	}
}
