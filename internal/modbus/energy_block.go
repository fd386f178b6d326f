package modbus

import "isg-mqtt-bridge/internal/logger"

// Energy block geometry (WPM family).
const (
	energyBlockAddress  uint16 = 3500
	energyBlockQuantity uint16 = 22
)

// readEnergyBlock decodes the daily and total heat amount counters. The
// total counters are split across two registers and combined as
// high*1000 + low (the low part counts 0..999 kWh, the high part MWh).
// A transport error leaves the block out of the result; the poll goes on.
func (c *Coordinator) readEnergyBlock() (Readings, error) {
	words, err := c.reader.ReadInputRegisters(isgUnitID, energyBlockAddress, energyBlockQuantity)
	if err != nil {
		logger.LogWarn("energy block read failed, skipping for this cycle: %v", err)
		return Readings{}, nil
	}

	d := NewDecoder(words)

	producedHeatingToday, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	producedHeatingTotalLow, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	producedHeatingTotalHigh, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	producedWaterToday, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	producedWaterTotalLow, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	producedWaterTotalHigh, err := d.Uint16()
	if err != nil {
		return nil, err
	}

	// Auxiliary (NHZ) heater counters, not decoded.
	if err := d.SkipBytes(8); err != nil {
		return nil, err
	}

	consumedHeatingToday, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	consumedHeatingTotalLow, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	consumedHeatingTotalHigh, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	consumedWaterToday, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	consumedWaterTotalLow, err := d.Uint16()
	if err != nil {
		return nil, err
	}
	consumedWaterTotalHigh, err := d.Uint16()
	if err != nil {
		return nil, err
	}

	return Readings{
		KeyProducedHeatingToday:      int(producedHeatingToday),
		KeyProducedHeatingTotal:      int(producedHeatingTotalHigh)*1000 + int(producedHeatingTotalLow),
		KeyProducedWaterHeatingToday: int(producedWaterToday),
		KeyProducedWaterHeatingTotal: int(producedWaterTotalHigh)*1000 + int(producedWaterTotalLow),
		KeyConsumedHeatingToday:      int(consumedHeatingToday),
		KeyConsumedHeatingTotal:      int(consumedHeatingTotalHigh)*1000 + int(consumedHeatingTotalLow),
		KeyConsumedWaterHeatingToday: int(consumedWaterToday),
		KeyConsumedWaterHeatingTotal: int(consumedWaterTotalHigh)*1000 + int(consumedWaterTotalLow),
	}, nil
}
