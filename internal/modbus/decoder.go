package modbus

import "fmt"

// isgUnavailable is the raw value the ISG reports when a sensor has no
// reading (e.g. the FEK remote is not installed).
const isgUnavailable = -32768

// DecodeError reports a malformed register block or schema: fewer words
// than the decode sequence requires, or a type code the parser does not
// know. Unlike a transport error it indicates a logic bug and is not
// recoverable within a poll cycle.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return "decode: " + e.Message
}

// Decoder is a cursor over a block of 16-bit register words, in register
// address order, big-endian within each word. It has no side effects
// beyond advancing the cursor.
type Decoder struct {
	words []uint16
	pos   int
}

// NewDecoder creates a decoder positioned at the first word of the block.
func NewDecoder(words []uint16) *Decoder {
	return &Decoder{words: words}
}

// Remaining returns the number of words left to consume.
func (d *Decoder) Remaining() int {
	return len(d.words) - d.pos
}

// Uint16 consumes one word and interprets it as an unsigned 16-bit integer.
func (d *Decoder) Uint16() (uint16, error) {
	if d.pos >= len(d.words) {
		return 0, &DecodeError{Message: fmt.Sprintf("register block exhausted at word %d", d.pos)}
	}
	w := d.words[d.pos]
	d.pos++
	return w, nil
}

// Int16 consumes one word and interprets it as a two's-complement signed
// 16-bit integer.
func (d *Decoder) Int16() (int16, error) {
	w, err := d.Uint16()
	if err != nil {
		return 0, err
	}
	return int16(w), nil
}

// SkipBytes advances the cursor by n/2 words without producing output.
// Used to step over registers whose layout is known but whose semantics
// are not decoded.
func (d *Decoder) SkipBytes(n int) error {
	words := n / 2
	if d.pos+words > len(d.words) {
		return &DecodeError{Message: fmt.Sprintf("skip of %d bytes past end of register block", n)}
	}
	d.pos += words
	return nil
}

// scaledValue applies the ISG 0.1 scale to a signed raw register value.
// The -32768 sentinel maps to nil ("no reading") instead of a number.
func scaledValue(raw int16) any {
	if raw == isgUnavailable {
		return nil
	}
	return float64(raw) * 0.1
}

// decodeScaled consumes one signed word and applies the 0.1 scale.
func decodeScaled(d *Decoder) (any, error) {
	raw, err := d.Int16()
	if err != nil {
		return nil, err
	}
	return scaledValue(raw), nil
}
