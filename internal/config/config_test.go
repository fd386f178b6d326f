package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

// TestLoadConfig tests loading a complete configuration file
func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
mqtt:
  broker: "test.mosquitto.org"
  port: 1883
  username: "test"
  password: "test"
  client_id: "test-client"
  base_topic: "test_isg"

homeassistant:
  device_name: "Test Heat Pump"
  device_id: "test_isg"
  manufacturer: "Stiebel Eltron"
  model: "ISG web"

modbus:
  host: "192.0.2.1"
  port: 502
  scan_interval: 60
  timeout: 3000

logging:
  level: "debug"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.MQTT.Broker != "test.mosquitto.org" {
		t.Errorf("expected broker test.mosquitto.org, got %s", cfg.MQTT.Broker)
	}
	if cfg.Modbus.Host != "192.0.2.1" {
		t.Errorf("expected modbus host 192.0.2.1, got %s", cfg.Modbus.Host)
	}
	if cfg.Modbus.ScanInterval != 60 {
		t.Errorf("expected scan interval 60, got %d", cfg.Modbus.ScanInterval)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

// TestLoadConfigDefaults tests that optional settings get working values
func TestLoadConfigDefaults(t *testing.T) {
	path := writeTempConfig(t, `
mqtt:
  broker: "test.mosquitto.org"

homeassistant:
  device_id: "test_isg"

modbus:
  host: "192.0.2.1"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Modbus.Port != 502 {
		t.Errorf("expected default modbus port 502, got %d", cfg.Modbus.Port)
	}
	if cfg.Modbus.ScanInterval != 30 {
		t.Errorf("expected default scan interval 30, got %d", cfg.Modbus.ScanInterval)
	}
	if cfg.Modbus.Timeout != 2000 {
		t.Errorf("expected default timeout 2000, got %d", cfg.Modbus.Timeout)
	}
	if cfg.MQTT.Port != 1883 {
		t.Errorf("expected default MQTT port 1883, got %d", cfg.MQTT.Port)
	}
	if cfg.MQTT.BaseTopic != "stiebel_isg" {
		t.Errorf("expected default base topic stiebel_isg, got %s", cfg.MQTT.BaseTopic)
	}
	if cfg.HomeAssistant.DiscoveryPrefix != "homeassistant" {
		t.Errorf("expected default discovery prefix, got %s", cfg.HomeAssistant.DiscoveryPrefix)
	}
	if cfg.HomeAssistant.StatusTopic != "stiebel_isg/status" {
		t.Errorf("expected status topic derived from base topic, got %s", cfg.HomeAssistant.StatusTopic)
	}
	if cfg.HomeAssistant.DiagnosticTopic != "stiebel_isg/diagnostic" {
		t.Errorf("expected diagnostic topic derived from base topic, got %s", cfg.HomeAssistant.DiagnosticTopic)
	}
}

// TestLoadConfigMissingHost tests that a config without an ISG host fails
func TestLoadConfigMissingHost(t *testing.T) {
	path := writeTempConfig(t, `
mqtt:
  broker: "test.mosquitto.org"

homeassistant:
  device_id: "test_isg"

modbus:
  port: 502
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for missing modbus host")
	}
}

// TestLoadConfigMissingFile tests the error for an unreadable config
func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestValidateRejectsBadValues tests individual validation rules
func TestValidateRejectsBadValues(t *testing.T) {
	base := `
mqtt:
  broker: "test.mosquitto.org"

homeassistant:
  device_id: "test_isg"

modbus:
  host: "192.0.2.1"
`

	tests := []struct {
		name  string
		mutate func(c *Config)
	}{
		{"negative scan interval", func(c *Config) { c.Modbus.ScanInterval = -5 }},
		{"port out of range", func(c *Config) { c.Modbus.Port = 70000 }},
		{"negative retry delay", func(c *Config) { c.MQTT.RetryDelay = -1 }},
		{"empty device id", func(c *Config) { c.HomeAssistant.DeviceID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(base), &cfg); err != nil {
				t.Fatalf("failed to parse base config: %v", err)
			}
			cfg.applyDefaults()
			tt.mutate(&cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
