package modbus

// Reading keys. Each key is a stable identifier for one decoded quantity
// and binds to a Home Assistant entity downstream; the strings must not
// change.
const (
	KeyActualTemperature       = "actual_temperature"
	KeyTargetTemperature       = "target_temperature"
	KeyActualTemperatureFEK    = "actual_temperature_fek"
	KeyTargetTemperatureFEK    = "target_temperature_fek"
	KeyActualHumidity          = "actual_humidity"
	KeyDewpointTemperature     = "dewpoint_temperature"
	KeyOutdoorTemperature      = "outdoor_temperature"
	KeyActualTemperatureHK1    = "actual_temperature_hk1"
	KeyTargetTemperatureHK1    = "target_temperature_hk1"
	KeyActualTemperatureHK2    = "actual_temperature_hk2"
	KeyTargetTemperatureHK2    = "target_temperature_hk2"
	KeyActualTemperatureBuffer = "actual_temperature_buffer"
	KeyTargetTemperatureBuffer = "target_temperature_buffer"
	KeyActualTemperatureWater  = "actual_temperature_water"
	KeyTargetTemperatureWater  = "target_temperature_water"
	KeySourceTemperature       = "source_temperature"

	KeyProducedHeatingToday      = "produced_heating_today"
	KeyProducedHeatingTotal      = "produced_heating_total"
	KeyProducedWaterHeatingToday = "produced_water_heating_today"
	KeyProducedWaterHeatingTotal = "produced_water_heating_total"
	KeyConsumedHeatingToday      = "consumed_heating_today"
	KeyConsumedHeatingTotal      = "consumed_heating_total"
	KeyConsumedWaterHeatingToday = "consumed_water_heating_today"
	KeyConsumedWaterHeatingTotal = "consumed_water_heating_total"

	KeyConsumedPower  = "consumed_power"
	KeyIsHeating      = "is_heating"
	KeyIsHeatingWater = "is_heating_water"
	KeyIsSummerMode   = "is_summer_mode"
	KeyIsCooling      = "is_cooling"

	KeyControllerID = "controller_id"
)

// Keys reported only by the LWZ/LWA family block.
const (
	KeyActualHumidityHK1 = "actual_humidity_hk1"
	KeyActualHumidityHK2 = "actual_humidity_hk2"
	KeySupplyTemperature = "supply_temperature"
	KeyReturnTemperature = "return_temperature"
	KeyPressureCircuit   = "pressure_circuit"
	KeyCompressorStarts  = "compressor_starts"
)
