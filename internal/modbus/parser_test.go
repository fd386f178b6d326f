package modbus

import (
	"errors"
	"testing"
)

// TestParseByMapScaled tests signed scaled decoding through a schema
func TestParseByMapScaled(t *testing.T) {
	schema := []SchemaEntry{
		{"room", TypeInt16Scaled},
		{"outdoor", TypeInt16Scaled},
	}
	// 215 -> 21.5, 0xFFCC = -52 -> -5.2
	result, err := parseByMap(schema, NewDecoder([]uint16{215, 0xFFCC}))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if v, ok := result.Float("room"); !ok || v != 21.5 {
		t.Errorf("expected room 21.5, got %v", result["room"])
	}
	if v, ok := result.Float("outdoor"); !ok || v != -5.2 {
		t.Errorf("expected outdoor -5.2, got %v", result["outdoor"])
	}
}

// TestParseByMapSentinel tests that the unavailable sentinel parses to nil
func TestParseByMapSentinel(t *testing.T) {
	schema := []SchemaEntry{{"fek", TypeInt16Scaled}}

	result, err := parseByMap(schema, NewDecoder([]uint16{0x8000}))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	v, present := result["fek"]
	if !present {
		t.Fatal("expected fek key to be present")
	}
	if v != nil {
		t.Errorf("expected nil for sentinel, got %v", v)
	}
	if result.Known("fek") {
		t.Error("sentinel value must not count as known")
	}
}

// TestParseByMapUnsigned tests that unsigned entries come out as int
func TestParseByMapUnsigned(t *testing.T) {
	schema := []SchemaEntry{{"starts", TypeUint16}}

	result, err := parseByMap(schema, NewDecoder([]uint16{40000}))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if v, ok := result.Int("starts"); !ok || v != 40000 {
		t.Errorf("expected starts 40000, got %v", result["starts"])
	}
}

// TestParseByMapNameless tests that nameless entries consume their word
func TestParseByMapNameless(t *testing.T) {
	schema := []SchemaEntry{
		{"", TypeUint16},
		{"kept", TypeUint16},
	}

	result, err := parseByMap(schema, NewDecoder([]uint16{99, 7}))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if len(result) != 1 {
		t.Errorf("expected a single key, got %d", len(result))
	}
	if v, ok := result.Int("kept"); !ok || v != 7 {
		t.Errorf("expected kept 7, got %v", result["kept"])
	}
}

// TestParseByMapUnknownType tests that a bad type code fails the parse
func TestParseByMapUnknownType(t *testing.T) {
	schema := []SchemaEntry{{"x", ValueType(3)}}

	_, err := parseByMap(schema, NewDecoder([]uint16{1}))
	if err == nil {
		t.Fatal("expected error for unknown register type")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
}

// TestParseByMapShortBlock tests that a short block fails the parse
func TestParseByMapShortBlock(t *testing.T) {
	schema := []SchemaEntry{
		{"a", TypeUint16},
		{"b", TypeUint16},
	}

	if _, err := parseByMap(schema, NewDecoder([]uint16{1})); err == nil {
		t.Fatal("expected error for block shorter than schema")
	}
}

// TestCombineComposites tests the high*1000+low combination rule
func TestCombineComposites(t *testing.T) {
	schema := []SchemaEntry{
		{"counter", TypeUint16 | TypeComposite},
		{"plain", TypeUint16},
		{"counter", TypeUint16 | TypeComposite},
	}

	result, err := parseByMap(schema, NewDecoder([]uint16{5, 1, 123}))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := result.CombineComposites(); err != nil {
		t.Fatalf("unexpected combine error: %v", err)
	}

	if v, ok := result.Int("counter"); !ok || v != 5123 {
		t.Errorf("expected counter 5123, got %v", result["counter"])
	}
	if v, ok := result.Int("plain"); !ok || v != 1 {
		t.Errorf("expected plain untouched, got %v", result["plain"])
	}
}

// TestCombineCompositesWrongArity tests that a lone part fails the poll
func TestCombineCompositesWrongArity(t *testing.T) {
	schema := []SchemaEntry{{"counter", TypeUint16 | TypeComposite}}

	result, err := parseByMap(schema, NewDecoder([]uint16{5}))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	err = result.CombineComposites()
	if err == nil {
		t.Fatal("expected error for composite with one part")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
}
