package modbus

import "isg-mqtt-bridge/internal/logger"

// LWZ/LWA family block geometry. The whole register map of this family
// lives in one bank starting at address 0.
const (
	lwValuesAddress  uint16 = 0
	lwValuesQuantity uint16 = 34
)

// lwValuesSchema is the register map of the LWZ/LWA family, one entry per
// word. Nameless entries are documented registers this integration does
// not surface. The compressor start counter is split across two registers
// far apart in the bank; the first carries the thousands, the second the
// 0..999 remainder.
var lwValuesSchema = []SchemaEntry{
	{KeyActualTemperatureHK1, TypeInt16Scaled},
	{KeyTargetTemperatureHK1, TypeInt16Scaled},
	{KeyActualHumidityHK1, TypeInt16Scaled},
	{KeyActualTemperatureHK2, TypeInt16Scaled},
	{KeyActualTemperatureHK2, TypeInt16Scaled},

	{KeyActualHumidityHK2, TypeInt16Scaled},
	{KeyOutdoorTemperature, TypeInt16Scaled},
	{KeyActualTemperatureHK1, TypeInt16Scaled}, // circuit actual, shares the hk1 key
	{KeyTargetTemperatureHK1, TypeInt16Scaled}, // circuit target, shares the hk1 key
	{KeyActualTemperatureHK2, TypeInt16Scaled},

	{KeyTargetTemperatureHK2, TypeInt16Scaled},
	{KeySupplyTemperature, TypeInt16Scaled},
	{KeyReturnTemperature, TypeInt16Scaled},
	{KeyPressureCircuit, TypeInt16Scaled},
	{"", TypeInt16Scaled}, // volume flow

	{KeyActualTemperatureWater, TypeInt16Scaled},
	{KeyTargetTemperatureWater, TypeInt16Scaled},
	{"", TypeUint16}, // inlet actual fan speed
	{"", TypeUint16}, // inlet target volume flow
	{"", TypeUint16}, // outlet actual fan speed

	{"", TypeUint16}, // outlet target volume flow
	{"", TypeUint16}, // outlet humidity
	{"", TypeInt16Scaled}, // outlet temperature
	{"", TypeInt16Scaled}, // outlet dew point
	{"", TypeInt16Scaled}, // hk1 dew point

	{"", TypeInt16Scaled}, // hk2 dew point
	{"", TypeInt16Scaled}, // collector temperature
	{"", TypeInt16Scaled}, // hot gas temperature
	{"", TypeInt16Scaled}, // high pressure (documented x0.01, discarded)
	{"", TypeInt16Scaled}, // low pressure (documented x0.01, discarded)

	{KeyCompressorStarts, TypeUint16 | TypeComposite}, // high part, x1000
	{"", TypeInt16Scaled}, // compressor rpm
	{"", TypeUint16},      // mixed water volume
	{KeyCompressorStarts, TypeUint16 | TypeComposite}, // low part, 0..999
}

// readSystemValuesLW decodes the LWZ/LWA family bank against its schema
// table. A transport error leaves the block out of the result.
func (c *Coordinator) readSystemValuesLW() (Readings, error) {
	words, err := c.reader.ReadInputRegisters(isgUnitID, lwValuesAddress, lwValuesQuantity)
	if err != nil {
		logger.LogWarn("system values read failed, skipping for this cycle: %v", err)
		return Readings{}, nil
	}

	return parseByMap(lwValuesSchema, NewDecoder(words))
}
