package modbus

import (
	"errors"
	"testing"
)

// TestDecoderUint16 tests unsigned word consumption in order
func TestDecoderUint16(t *testing.T) {
	d := NewDecoder([]uint16{0, 1, 65535})

	for i, want := range []uint16{0, 1, 65535} {
		got, err := d.Uint16()
		if err != nil {
			t.Fatalf("word %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("word %d: expected %d, got %d", i, want, got)
		}
	}

	if d.Remaining() != 0 {
		t.Errorf("expected 0 remaining words, got %d", d.Remaining())
	}
}

// TestDecoderInt16 tests two's-complement interpretation
func TestDecoderInt16(t *testing.T) {
	// 0xFF38 = -200 two's complement, 0x8000 = -32768
	d := NewDecoder([]uint16{0xFF38, 0x8000, 0x7FFF})

	for i, want := range []int16{-200, -32768, 32767} {
		got, err := d.Int16()
		if err != nil {
			t.Fatalf("word %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("word %d: expected %d, got %d", i, want, got)
		}
	}
}

// TestDecoderExhaustion tests that reading past the block fails
func TestDecoderExhaustion(t *testing.T) {
	d := NewDecoder([]uint16{42})

	if _, err := d.Uint16(); err != nil {
		t.Fatalf("unexpected error on first word: %v", err)
	}

	_, err := d.Uint16()
	if err == nil {
		t.Fatal("expected error reading past end of block")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
}

// TestDecoderSkipBytes tests gap stepping in byte units
func TestDecoderSkipBytes(t *testing.T) {
	d := NewDecoder([]uint16{1, 2, 3, 4, 5})

	if err := d.SkipBytes(8); err != nil {
		t.Fatalf("unexpected skip error: %v", err)
	}

	got, err := d.Uint16()
	if err != nil {
		t.Fatalf("unexpected error after skip: %v", err)
	}
	if got != 5 {
		t.Errorf("expected word 5 after 8-byte skip, got %d", got)
	}
}

// TestDecoderSkipPastEnd tests that an oversized skip fails
func TestDecoderSkipPastEnd(t *testing.T) {
	d := NewDecoder([]uint16{1, 2})

	if err := d.SkipBytes(6); err == nil {
		t.Fatal("expected error skipping past end of block")
	}
}

// TestScaledValue tests the 0.1 scale and the unavailable sentinel
func TestScaledValue(t *testing.T) {
	tests := []struct {
		raw  int16
		want any
	}{
		{215, 21.5},
		{-52, -5.2},
		{0, 0.0},
		{-32768, nil},
	}

	for _, tt := range tests {
		got := scaledValue(tt.raw)
		if got != tt.want {
			t.Errorf("scaledValue(%d): expected %v, got %v", tt.raw, tt.want, got)
		}
	}
}
