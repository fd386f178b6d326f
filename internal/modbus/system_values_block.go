package modbus

import "isg-mqtt-bridge/internal/logger"

// System values block geometry (WPM family).
const (
	systemValuesAddress  uint16 = 500
	systemValuesQuantity uint16 = 40
)

// readSystemValues decodes the main temperature and humidity bank. The
// walk is sequential with fixed skip gaps over undocumented registers;
// the gap sizes must not change or every later field shifts. A transport
// error leaves the block out of the result.
func (c *Coordinator) readSystemValues() (Readings, error) {
	words, err := c.reader.ReadInputRegisters(isgUnitID, systemValuesAddress, systemValuesQuantity)
	if err != nil {
		logger.LogWarn("system values read failed, skipping for this cycle: %v", err)
		return Readings{}, nil
	}

	d := NewDecoder(words)
	result := make(Readings)

	for _, key := range []string{
		KeyActualTemperature,
		KeyTargetTemperature,
		KeyActualTemperatureFEK,
		KeyTargetTemperatureFEK,
		KeyActualHumidity,
		KeyDewpointTemperature,
		KeyOutdoorTemperature,
		KeyActualTemperatureHK1,
	} {
		if result[key], err = decodeScaled(d); err != nil {
			return nil, err
		}
	}

	// The HK1 target appears twice in this bank. The first word holds a
	// value the register map documentation does not account for; the
	// second is the one kept. Both words are consumed to keep the walk
	// aligned. TODO: check against a newer ISG register map whether the
	// first word is the real target.
	if _, err = d.Int16(); err != nil {
		return nil, err
	}
	if result[KeyTargetTemperatureHK1], err = decodeScaled(d); err != nil {
		return nil, err
	}

	if result[KeyActualTemperatureHK2], err = decodeScaled(d); err != nil {
		return nil, err
	}
	if result[KeyTargetTemperatureHK2], err = decodeScaled(d); err != nil {
		return nil, err
	}

	if err = d.SkipBytes(10); err != nil {
		return nil, err
	}
	if result[KeyActualTemperatureBuffer], err = decodeScaled(d); err != nil {
		return nil, err
	}
	if result[KeyTargetTemperatureBuffer], err = decodeScaled(d); err != nil {
		return nil, err
	}

	if err = d.SkipBytes(4); err != nil {
		return nil, err
	}
	if result[KeyActualTemperatureWater], err = decodeScaled(d); err != nil {
		return nil, err
	}
	if result[KeyTargetTemperatureWater], err = decodeScaled(d); err != nil {
		return nil, err
	}

	if err = d.SkipBytes(24); err != nil {
		return nil, err
	}
	if result[KeySourceTemperature], err = decodeScaled(d); err != nil {
		return nil, err
	}

	return result, nil
}
