package encryption_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/imgenc/internal/encryption"
)

func TestPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		length  int
		wantLen int
		wantPad byte
	}{
		{"empty", 0, 16, 16},
		{"one byte", 1, 16, 15},
		{"hello world", 11, 16, 5},
		{"one short of a block", 15, 16, 1},
		{"exact block", 16, 32, 16},
		{"block and one", 17, 32, 15},
		{"three blocks", 48, 64, 16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := bytes.Repeat([]byte{'x'}, tt.length)
			padded := encryption.Pad(data)

			if len(padded) != tt.wantLen {
				t.Fatalf("Pad() length = %d, want %d", len(padded), tt.wantLen)
			}

			if !bytes.Equal(padded[:tt.length], data) {
				t.Error("Pad() changed the data")
			}

			for i, b := range padded[tt.length:] {
				if b != tt.wantPad {
					t.Errorf("padding byte %d = %d, want %d", i, b, tt.wantPad)
				}
			}
		})
	}
}

func TestPadDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	backing := []byte("0123456789abcdefSENTINEL")
	data := backing[:11]

	encryption.Pad(data)

	if string(backing) != "0123456789abcdefSENTINEL" {
		t.Errorf("Pad() wrote into the input's backing array: %q", backing)
	}
}

func TestPadUnpadRoundTrip(t *testing.T) {
	t.Parallel()

	for length := 0; length < 70; length++ {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(i * 7)
		}

		got, err := encryption.Unpad(encryption.Pad(data))
		if err != nil {
			t.Fatalf("length %d: Unpad() error: %v", length, err)
		}

		if !bytes.Equal(got, data) {
			t.Fatalf("length %d: round trip = %x, want %x", length, got, data)
		}
	}
}

func TestUnpadRejects(t *testing.T) {
	t.Parallel()

	block := func(last ...byte) []byte {
		b := bytes.Repeat([]byte{'a'}, 16)
		copy(b[16-len(last):], last)

		return b
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"shorter than a block", bytes.Repeat([]byte{1}, 10)},
		{"not block aligned", bytes.Repeat([]byte{1}, 17)},
		{"zero padding byte", block(0)},
		{"padding byte above block size", block(17)},
		{"padding byte 0xff", block(0xff)},
		{"inconsistent padding bytes", block(3, 2, 3)},
		{"full block claimed but not full", block(16)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := encryption.Unpad(tt.data); !errors.Is(err, encryption.ErrPadding) {
				t.Errorf("Unpad(%x) error = %v, want ErrPadding", tt.data, err)
			}
		})
	}
}

func TestUnpadFullBlock(t *testing.T) {
	t.Parallel()

	data := append([]byte("0123456789abcdef"), bytes.Repeat([]byte{16}, 16)...)

	got, err := encryption.Unpad(data)
	if err != nil {
		t.Fatalf("Unpad() error: %v", err)
	}

	if string(got) != "0123456789abcdef" {
		t.Errorf("Unpad() = %q", got)
	}
}
