package binary

import "testing"

func TestEndianness_Uint16(t *testing.T) {
	tests := []struct {
		name  string
		order Endianness
		input []byte
		want  uint16
	}{
		{"big-endian", BigEndian, []byte{0x00, 0x41}, 0x0041},
		{"little-endian", LittleEndian, []byte{0x41, 0x00}, 0x0041},
		{"big-endian high byte", BigEndian, []byte{0xD8, 0x3D}, 0xD83D},
		{"little-endian high byte", LittleEndian, []byte{0x3D, 0xD8}, 0xD83D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.Uint16(tt.input); got != tt.want {
				t.Errorf("Uint16(%x) = 0x%04x, want 0x%04x", tt.input, got, tt.want)
			}
		})
	}
}

func TestEndianness_String(t *testing.T) {
	if got := BigEndian.String(); got != "big-endian" {
		t.Errorf("BigEndian.String() = %q", got)
	}
	if got := LittleEndian.String(); got != "little-endian" {
		t.Errorf("LittleEndian.String() = %q", got)
	}
}

func TestUint24(t *testing.T) {
	tests := []struct {
		input []byte
		want  uint32
	}{
		{[]byte{0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x06}, 6},
		{[]byte{0x00, 0x01, 0x00}, 256},
		{[]byte{0xFF, 0xFF, 0xFF}, 0xFFFFFF},
	}

	for _, tt := range tests {
		if got := Uint24(tt.input); got != tt.want {
			t.Errorf("Uint24(%x) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestUint32(t *testing.T) {
	if got := Uint32([]byte{0x00, 0x00, 0x01, 0x00}); got != 256 {
		t.Errorf("Uint32 = %d, want 256", got)
	}
	// No syncsafe masking on plain sizes.
	if got := Uint32([]byte{0x00, 0x00, 0x00, 0x80}); got != 128 {
		t.Errorf("Uint32 = %d, want 128", got)
	}
}
