package modbus

// ValueType encodes how one register word is interpreted: width,
// signedness and scale, plus an orthogonal composite flag. The numeric
// values are the ISG Modbus documentation's data type codes.
type ValueType uint8

const (
	// TypeInt16Scaled is a 16-bit signed value scaled by 0.1.
	// Raw -32768 means "no reading".
	TypeInt16Scaled ValueType = 2

	// TypeUint16 is a 16-bit unsigned value, scale 1.
	TypeUint16 ValueType = 6

	// TypeInt16Scaled100 is a 16-bit signed value scaled by 0.01.
	// Documented for the pressure registers; no current schema decodes one.
	TypeInt16Scaled100 ValueType = 7

	// TypeUint8 is an 8-bit unsigned value. Documented, unused.
	TypeUint8 ValueType = 8

	// TypeComposite is ORed into a type code to mark a value split across
	// multiple registers. The parser accumulates the parts as an ordered
	// list under the entry name; CombineComposites collapses them.
	TypeComposite ValueType = 128
)

// SchemaEntry maps one register word to a reading name. An empty name
// means the word is decoded and discarded (reserved or undocumented
// register); it still consumes the word so later entries stay aligned.
type SchemaEntry struct {
	Name string
	Type ValueType
}
