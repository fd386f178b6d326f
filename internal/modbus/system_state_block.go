package modbus

import "isg-mqtt-bridge/internal/logger"

// System state register geometry (WPM family).
const (
	systemStateAddress  uint16 = 2500
	systemStateQuantity uint16 = 1
)

// Operating state bit masks.
const (
	stateBitHeating      = 1 << 4
	stateBitHeatingWater = 1 << 5
	stateBitSummerMode   = 1 << 7
	stateBitCooling      = 1 << 8
)

// heatPumpAveragePower is the assumed electrical draw in watts while the
// compressor runs. The ISG exposes no instantaneous power register, so
// consumed_power is this constant whenever heating or water heating is
// active and zero otherwise.
const heatPumpAveragePower = 5000.0

// readSystemState decodes the operating state register into boolean
// flags plus the derived consumed power estimate. A transport error
// leaves the flags out of the result for this cycle.
func (c *Coordinator) readSystemState() (Readings, error) {
	words, err := c.reader.ReadInputRegisters(isgUnitID, systemStateAddress, systemStateQuantity)
	if err != nil {
		logger.LogWarn("system state read failed, skipping for this cycle: %v", err)
		return Readings{}, nil
	}

	state, err := NewDecoder(words).Uint16()
	if err != nil {
		return nil, err
	}

	isHeating := state&stateBitHeating != 0
	isHeatingWater := state&stateBitHeatingWater != 0

	consumedPower := 0.0
	if isHeating || isHeatingWater {
		consumedPower = heatPumpAveragePower
	}

	return Readings{
		KeyIsHeating:      isHeating,
		KeyIsHeatingWater: isHeatingWater,
		KeyIsSummerMode:   state&stateBitSummerMode != 0,
		KeyIsCooling:      state&stateBitCooling != 0,
		KeyConsumedPower:  consumedPower,
	}, nil
}
