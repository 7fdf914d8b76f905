package encryption

import (
	"bytes"
	"crypto/aes"
	"fmt"
)

// Pad adds PKCS#7 padding so the result is a multiple of the AES block size.
// Aligned input gets a full block of padding. The input is never modified.
func Pad(data []byte) []byte {
	padding := aes.BlockSize - len(data)%aes.BlockSize

	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)

	return append(padded, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// Unpad removes PKCS#7 padding from the data.
// It returns ErrPadding if the padding is invalid.
func Unpad(data []byte) ([]byte, error) {
	length := len(data)

	switch {
	case length == 0:
		return nil, fmt.Errorf("%w: empty data", ErrPadding)
	case length < aes.BlockSize:
		return nil, fmt.Errorf("%w: %d bytes is shorter than one block", ErrPadding, length)
	case length%aes.BlockSize != 0:
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the block size", ErrPadding, length)
	}

	padding := int(data[length-1])
	if padding == 0 || padding > aes.BlockSize {
		return nil, fmt.Errorf("%w: invalid padding size %d", ErrPadding, padding)
	}

	// Verify padding
	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, fmt.Errorf("%w: padding bytes do not match", ErrPadding)
		}
	}

	return data[:length-padding], nil
}
