package modbus

import "fmt"

// parseByMap decodes one value per schema entry from the decoder, in
// order, and assembles them into a Readings map. It consumes exactly
// len(schema) words; the caller must supply a decoder backed by at least
// that many.
//
// Nameless entries are decoded and discarded but still consume their
// word. Composite entries accumulate their parts as an ordered list under
// the shared name; plain entries overwrite, last write wins. A type code
// other than the two the schemas use is a schema bug and fails the parse.
func parseByMap(schema []SchemaEntry, d *Decoder) (Readings, error) {
	result := make(Readings, len(schema))

	for _, entry := range schema {
		composite := entry.Type&TypeComposite != 0
		baseType := entry.Type &^ TypeComposite

		var value any
		switch baseType {
		case TypeInt16Scaled:
			raw, err := d.Int16()
			if err != nil {
				return nil, err
			}
			value = scaledValue(raw)
		case TypeUint16:
			raw, err := d.Uint16()
			if err != nil {
				return nil, err
			}
			value = int(raw)
		default:
			return nil, &DecodeError{Message: fmt.Sprintf("unknown register type %d", baseType)}
		}

		if entry.Name == "" {
			continue
		}
		if composite {
			parts, _ := result[entry.Name].([]any)
			result[entry.Name] = append(parts, value)
		} else {
			result[entry.Name] = value
		}
	}

	return result, nil
}
