package main

import (
	"fmt"
	"os"

	"isg-mqtt-bridge/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: validate_config <config-file>")
		os.Exit(1)
	}

	configPath := os.Args[1]
	fmt.Printf("📄 Loading config from: %s\n", configPath)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   MQTT Broker: %s:%d\n", cfg.MQTT.Broker, cfg.MQTT.Port)
	fmt.Printf("   Base Topic: %s\n", cfg.MQTT.BaseTopic)
	fmt.Printf("   ISG: %s:%d (scan every %ds, timeout %dms)\n",
		cfg.Modbus.Host, cfg.Modbus.Port, cfg.Modbus.ScanInterval, cfg.Modbus.Timeout)
	fmt.Printf("   HA Device: %s (%s)\n", cfg.HomeAssistant.DeviceName, cfg.HomeAssistant.DeviceID)
	fmt.Printf("   Status Topic: %s\n", cfg.HomeAssistant.StatusTopic)
	fmt.Printf("   Diagnostic Topic: %s\n", cfg.HomeAssistant.DiagnosticTopic)

	fmt.Println("\n✅ Configuration is valid!")
}
