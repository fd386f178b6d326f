package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"isg-mqtt-bridge/internal/logger"
)

// Config represents the complete application configuration
type Config struct {
	MQTT          MQTTConfig           `yaml:"mqtt"`
	HomeAssistant HAConfig             `yaml:"homeassistant"`
	Modbus        ModbusConfig         `yaml:"modbus"`
	Logging       logger.LoggingConfig `yaml:"logging"`
}

// MQTTConfig contains MQTT broker settings
type MQTTConfig struct {
	Broker     string `yaml:"broker"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	ClientID   string `yaml:"client_id"`
	RetryDelay int    `yaml:"retry_delay"` // Delay between connection retries in milliseconds
	BaseTopic  string `yaml:"base_topic"`  // Prefix for all sensor state topics
}

// HAConfig contains Home Assistant MQTT Discovery settings
type HAConfig struct {
	DiscoveryPrefix string `yaml:"discovery_prefix"`
	DeviceName      string `yaml:"device_name"`
	DeviceID        string `yaml:"device_id"`
	Manufacturer    string `yaml:"manufacturer"`
	Model           string `yaml:"model"`
	StatusTopic     string `yaml:"status_topic"`
	DiagnosticTopic string `yaml:"diagnostic_topic"`
}

// ModbusConfig contains the ISG Modbus/TCP settings. Register addresses
// and the unit id are protocol constants and deliberately not
// configurable.
type ModbusConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ScanInterval int    `yaml:"scan_interval"` // Seconds between poll cycles
	Timeout      int    `yaml:"timeout"`       // Per-exchange timeout in milliseconds
}

// LoadConfig loads configuration from specified file
func LoadConfig(configPath string) (*Config, error) {
	// Try to find configuration file in different locations
	paths := []string{
		configPath,
		"/etc/isg-mqtt-bridge/config.yaml",
		"/etc/isg-mqtt-bridge.yaml",
		"./config.yaml",
	}

	var data []byte
	var err error
	var usedPath string

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err = os.ReadFile(path)
		if err == nil {
			usedPath = path
			break
		}
	}

	if err != nil {
		return nil, fmt.Errorf("cannot read configuration file from any of the locations: %v. Last error: %w", paths, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing configuration from %s: %w", usedPath, err)
	}

	config.applyDefaults()

	// Configuration validation
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", usedPath, err)
	}

	return &config, nil
}

// applyDefaults fills optional settings with working values.
func (c *Config) applyDefaults() {
	if c.Modbus.Port == 0 {
		c.Modbus.Port = 502
	}
	if c.Modbus.ScanInterval == 0 {
		c.Modbus.ScanInterval = 30
	}
	if c.Modbus.Timeout == 0 {
		c.Modbus.Timeout = 2000
	}
	if c.MQTT.Port == 0 {
		c.MQTT.Port = 1883
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = "isg_mqtt_bridge"
	}
	if c.MQTT.BaseTopic == "" {
		c.MQTT.BaseTopic = "stiebel_isg"
	}
	if c.HomeAssistant.DiscoveryPrefix == "" {
		c.HomeAssistant.DiscoveryPrefix = "homeassistant"
	}
	if c.HomeAssistant.StatusTopic == "" {
		c.HomeAssistant.StatusTopic = c.MQTT.BaseTopic + "/status"
	}
	if c.HomeAssistant.DiagnosticTopic == "" {
		c.HomeAssistant.DiagnosticTopic = c.MQTT.BaseTopic + "/diagnostic"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Modbus.Host == "" {
		return fmt.Errorf("Modbus host is not specified")
	}
	if c.Modbus.Port <= 0 || c.Modbus.Port > 65535 {
		return fmt.Errorf("Modbus port must be in 1..65535")
	}
	if c.Modbus.ScanInterval <= 0 {
		return fmt.Errorf("Modbus scan interval must be positive")
	}
	if c.Modbus.Timeout <= 0 {
		return fmt.Errorf("Modbus timeout must be positive")
	}
	if c.MQTT.Broker == "" {
		return fmt.Errorf("MQTT broker is not specified")
	}
	if c.MQTT.Port <= 0 {
		return fmt.Errorf("MQTT port must be positive")
	}
	if c.MQTT.RetryDelay < 0 {
		return fmt.Errorf("MQTT retry delay must be non-negative")
	}
	if c.HomeAssistant.DeviceID == "" {
		return fmt.Errorf("Home Assistant device id is not specified")
	}
	if c.HomeAssistant.StatusTopic == "" {
		return fmt.Errorf("Home Assistant status topic is not specified")
	}
	if c.HomeAssistant.DiagnosticTopic == "" {
		return fmt.Errorf("Home Assistant diagnostic topic is not specified")
	}

	return nil
}
