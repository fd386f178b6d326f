package homeassistant

import (
	"isg-mqtt-bridge/internal/modbus"
	"isg-mqtt-bridge/internal/mqtt"
)

// BuildSensors returns the full catalog of Home Assistant entities the
// bridge can publish, with state topics rooted at baseTopic. The catalog
// covers both controller families; entities whose reading never appears
// in a poll simply stay unknown in Home Assistant.
func BuildSensors(baseTopic string) []mqtt.Sensor {
	sensors := []mqtt.Sensor{
		// Room and outdoor climate
		{Key: modbus.KeyActualTemperature, Name: "Actual Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyTargetTemperature, Name: "Target Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyActualTemperatureFEK, Name: "Actual Temperature FEK", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyTargetTemperatureFEK, Name: "Target Temperature FEK", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyActualHumidity, Name: "Humidity", Unit: "%", DeviceClass: "humidity", StateClass: "measurement", Handler: "humidity"},
		{Key: modbus.KeyDewpointTemperature, Name: "Dew Point Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyOutdoorTemperature, Name: "Outdoor Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},

		// Heating circuits, buffer and hot water
		{Key: modbus.KeyActualTemperatureHK1, Name: "Actual Temperature HK 1", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyTargetTemperatureHK1, Name: "Target Temperature HK 1", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyActualTemperatureHK2, Name: "Actual Temperature HK 2", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyTargetTemperatureHK2, Name: "Target Temperature HK 2", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyActualTemperatureBuffer, Name: "Actual Temperature Buffer", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyTargetTemperatureBuffer, Name: "Target Temperature Buffer", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyActualTemperatureWater, Name: "Actual Temperature Water", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyTargetTemperatureWater, Name: "Target Temperature Water", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeySourceTemperature, Name: "Source Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},

		// Energy counters
		{Key: modbus.KeyProducedHeatingToday, Name: "Produced Heating Today", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyProducedHeatingTotal, Name: "Produced Heating Total", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyProducedWaterHeatingToday, Name: "Produced Water Heating Today", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyProducedWaterHeatingTotal, Name: "Produced Water Heating Total", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyConsumedHeatingToday, Name: "Consumed Heating Today", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyConsumedHeatingTotal, Name: "Consumed Heating Total", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyConsumedWaterHeatingToday, Name: "Consumed Water Heating Today", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},
		{Key: modbus.KeyConsumedWaterHeatingTotal, Name: "Consumed Water Heating Total", Unit: "kWh", DeviceClass: "energy", StateClass: "total_increasing", Handler: "energy"},

		// Operating state
		{Key: modbus.KeyConsumedPower, Name: "Consumed Power", Unit: "W", DeviceClass: "power", StateClass: "measurement", Handler: "power"},
		{Key: modbus.KeyIsHeating, Name: "Is Heating", DeviceClass: "running", Handler: "binary_sensor"},
		{Key: modbus.KeyIsHeatingWater, Name: "Is Heating Water", DeviceClass: "running", Handler: "binary_sensor"},
		{Key: modbus.KeyIsSummerMode, Name: "Is Summer Mode", Handler: "binary_sensor"},
		{Key: modbus.KeyIsCooling, Name: "Is Cooling", DeviceClass: "running", Handler: "binary_sensor"},

		// LWZ/LWA specific
		{Key: modbus.KeyActualHumidityHK1, Name: "Humidity HK 1", Unit: "%", DeviceClass: "humidity", StateClass: "measurement", Handler: "humidity"},
		{Key: modbus.KeyActualHumidityHK2, Name: "Humidity HK 2", Unit: "%", DeviceClass: "humidity", StateClass: "measurement", Handler: "humidity"},
		{Key: modbus.KeySupplyTemperature, Name: "Supply Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyReturnTemperature, Name: "Return Temperature", Unit: "°C", DeviceClass: "temperature", StateClass: "measurement", Handler: "temperature"},
		{Key: modbus.KeyPressureCircuit, Name: "Pressure Heating Circuit", Unit: "bar", DeviceClass: "pressure", StateClass: "measurement", Handler: "sensor"},
		{Key: modbus.KeyCompressorStarts, Name: "Compressor Starts", StateClass: "total_increasing", Handler: "energy"},

		// Controller model, surfaced for diagnostics
		{Key: modbus.KeyControllerID, Name: "Controller ID", Category: "diagnostic", Handler: "sensor"},
	}

	for i := range sensors {
		sensors[i].StateTopic = stateTopic(baseTopic, &sensors[i])
	}
	return sensors
}

// stateTopic derives the state topic for one entity. Binary sensors get
// their own branch so the broker tree mirrors the HA component split.
func stateTopic(baseTopic string, sensor *mqtt.Sensor) string {
	if sensor.Handler == "binary_sensor" {
		return baseTopic + "/binary_sensor/" + sensor.Key
	}
	return baseTopic + "/sensor/" + sensor.Key
}
