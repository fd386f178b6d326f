package modbus

import "fmt"

// All current ISG installations expose the heat pump as unit 1.
const isgUnitID uint8 = 1

// Controller identity probe geometry.
const (
	controllerIDAddress  uint16 = 5001
	controllerIDQuantity uint16 = 1
)

// controllerIDLWZ is the identity code of the LWZ/LWA controller family.
// Its register map is incompatible with the WPM family and carries no
// energy or system-state blocks.
const controllerIDLWZ = 103

// readControllerID reads the controller identity register. Unlike the
// data blocks, a failure here is fatal for the poll: without an identity
// no register map can be safely selected.
func (c *Coordinator) readControllerID() (uint16, error) {
	words, err := c.reader.ReadInputRegisters(isgUnitID, controllerIDAddress, controllerIDQuantity)
	if err != nil {
		return 0, fmt.Errorf("controller identity: %w", err)
	}

	return NewDecoder(words).Uint16()
}
