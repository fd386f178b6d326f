package homeassistant

import (
	"strings"
	"testing"

	"isg-mqtt-bridge/internal/modbus"
)

// TestBuildSensorsCoverage tests that the catalog covers every reading key
func TestBuildSensorsCoverage(t *testing.T) {
	sensors := BuildSensors("stiebel_isg")

	byKey := make(map[string]int)
	for _, s := range sensors {
		byKey[s.Key]++
	}

	keys := []string{
		modbus.KeyActualTemperature,
		modbus.KeyTargetTemperature,
		modbus.KeyActualTemperatureFEK,
		modbus.KeyTargetTemperatureFEK,
		modbus.KeyActualHumidity,
		modbus.KeyDewpointTemperature,
		modbus.KeyOutdoorTemperature,
		modbus.KeyActualTemperatureHK1,
		modbus.KeyTargetTemperatureHK1,
		modbus.KeyActualTemperatureHK2,
		modbus.KeyTargetTemperatureHK2,
		modbus.KeyActualTemperatureBuffer,
		modbus.KeyTargetTemperatureBuffer,
		modbus.KeyActualTemperatureWater,
		modbus.KeyTargetTemperatureWater,
		modbus.KeySourceTemperature,
		modbus.KeyProducedHeatingToday,
		modbus.KeyProducedHeatingTotal,
		modbus.KeyProducedWaterHeatingToday,
		modbus.KeyProducedWaterHeatingTotal,
		modbus.KeyConsumedHeatingToday,
		modbus.KeyConsumedHeatingTotal,
		modbus.KeyConsumedWaterHeatingToday,
		modbus.KeyConsumedWaterHeatingTotal,
		modbus.KeyConsumedPower,
		modbus.KeyIsHeating,
		modbus.KeyIsHeatingWater,
		modbus.KeyIsSummerMode,
		modbus.KeyIsCooling,
		modbus.KeyActualHumidityHK1,
		modbus.KeyActualHumidityHK2,
		modbus.KeySupplyTemperature,
		modbus.KeyReturnTemperature,
		modbus.KeyPressureCircuit,
		modbus.KeyCompressorStarts,
		modbus.KeyControllerID,
	}
	for _, key := range keys {
		if byKey[key] != 1 {
			t.Errorf("expected exactly one catalog entry for %s, got %d", key, byKey[key])
		}
	}
	if len(sensors) != len(keys) {
		t.Errorf("catalog has %d entries, expected %d", len(sensors), len(keys))
	}
}

// TestBuildSensorsStateTopics tests state topic layout per component
func TestBuildSensorsStateTopics(t *testing.T) {
	for _, s := range BuildSensors("stiebel_isg") {
		var wantPrefix string
		if s.Handler == "binary_sensor" {
			wantPrefix = "stiebel_isg/binary_sensor/"
		} else {
			wantPrefix = "stiebel_isg/sensor/"
		}

		if !strings.HasPrefix(s.StateTopic, wantPrefix) {
			t.Errorf("%s: expected topic under %s, got %s", s.Key, wantPrefix, s.StateTopic)
		}
		if !strings.HasSuffix(s.StateTopic, "/"+s.Key) {
			t.Errorf("%s: topic must end in the key, got %s", s.Key, s.StateTopic)
		}
	}
}

// TestBuildSensorsHandlers tests that each entry names a registered handler
func TestBuildSensorsHandlers(t *testing.T) {
	known := map[string]bool{
		"temperature":   true,
		"humidity":      true,
		"energy":        true,
		"power":         true,
		"binary_sensor": true,
		"sensor":        true,
	}

	for _, s := range BuildSensors("stiebel_isg") {
		if !known[s.Handler] {
			t.Errorf("%s: unknown handler %q", s.Key, s.Handler)
		}
	}
}
