package encryption

import (
	"crypto/aes"
	"fmt"
)

// BuildEnvelope lays out an encrypted file: the IV followed by the ciphertext.
func BuildEnvelope(iv IV, ciphertext []byte) []byte {
	envelope := make([]byte, 0, IVSize+len(ciphertext))
	envelope = append(envelope, iv[:]...)

	return append(envelope, ciphertext...)
}

// ParseEnvelope splits an encrypted file into its IV and ciphertext.
// The returned ciphertext aliases data.
func ParseEnvelope(data []byte) (IV, []byte, error) {
	if len(data) < IVSize {
		return IV{}, nil, fmt.Errorf("%w: %d bytes is too short to hold an IV", ErrFormat, len(data))
	}

	ciphertext := data[IVSize:]

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return IV{}, nil, fmt.Errorf("%w: ciphertext of %d bytes is not a positive multiple of %d",
			ErrFormat, len(ciphertext), aes.BlockSize)
	}

	var iv IV

	copy(iv[:], data[:IVSize])

	return iv, ciphertext, nil
}
