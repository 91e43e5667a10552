// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package resource

import "testing"

func TestPackedID_RoundTrip(t *testing.T) {
	ids := []ImageID{0, 1, 12345, MaxPoolSize - 1}

	for _, id := range ids {
		for _, mutable := range []bool{false, true} {
			p := id.Pack(mutable)
			if p.Index() != uint32(id) {
				t.Errorf("Pack(%d, %v).Index() = %d, want %d", id, mutable, p.Index(), id)
			}
			if p.Type() != TypeStorageImage {
				t.Errorf("Pack(%d, %v).Type() = %v, want storage image", id, mutable, p.Type())
			}
			if p.Mutable() != mutable {
				t.Errorf("Pack(%d, %v).Mutable() = %v", id, mutable, p.Mutable())
			}
		}
	}
}

func TestPackedID_FieldLayout(t *testing.T) {
	// Index in the low 20 bits, type in bits 20..23, mutable flag in bit 24.
	p := ImageID(0xABCDE).Pack(true)
	if uint32(p) != 0xABCDE|1<<24 {
		t.Errorf("packed = %#x, want %#x", uint32(p), uint32(0xABCDE|1<<24))
	}

	buffer := PackedID(uint32(TypeBuffer) << 20)
	if buffer.Type() != TypeBuffer {
		t.Errorf("Type() = %v, want buffer", buffer.Type())
	}
	if buffer.Index() != 0 || buffer.Mutable() {
		t.Error("type bits must not leak into index or mutable fields")
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeStorageImage, "storage-image"},
		{TypeBuffer, "buffer"},
		{Type(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
