package modbus

// Coordinator runs one full read cycle against the ISG: identity probe,
// register map selection, block decodes and result assembly. It holds no
// state between polls; every cycle re-reads the controller identity and
// rebuilds the result from scratch.
type Coordinator struct {
	reader RegisterReader
}

// NewCoordinator creates a coordinator over the given register reader.
func NewCoordinator(reader RegisterReader) *Coordinator {
	return &Coordinator{reader: reader}
}

// Poll performs one poll cycle and returns the merged readings.
//
// The controller identity selects which of the two incompatible register
// map families is decoded; the families never mix within one result. A
// failed identity read aborts the poll, as does any decode error (those
// indicate a schema bug, not a transient line problem). A failed read of
// an individual data block only drops that block's keys for the cycle.
func (c *Coordinator) Poll() (Readings, error) {
	id, err := c.readControllerID()
	if err != nil {
		return nil, err
	}

	result := make(Readings)

	var blocks []func() (Readings, error)
	if id == controllerIDLWZ {
		blocks = []func() (Readings, error){c.readSystemValuesLW}
	} else {
		blocks = []func() (Readings, error){
			c.readEnergyBlock,
			c.readSystemState,
			c.readSystemValues,
		}
	}

	for _, read := range blocks {
		block, err := read()
		if err != nil {
			return nil, err
		}
		result.merge(block)
	}

	result[KeyControllerID] = int(id)

	if err := result.CombineComposites(); err != nil {
		return nil, err
	}

	return result, nil
}
