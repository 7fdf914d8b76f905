package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// IVSize is the size of the CBC initialization vector in bytes.
const IVSize = aes.BlockSize

// IV is a CBC initialization vector.
type IV [IVSize]byte

// NewIV returns a fresh IV read from the given source, or crypto/rand when random is nil.
func NewIV(random io.Reader) (IV, error) {
	if random == nil {
		random = rand.Reader
	}

	var iv IV
	if _, err := io.ReadFull(random, iv[:]); err != nil {
		return IV{}, fmt.Errorf("generating IV: %w", err)
	}

	return iv, nil
}

// EncryptCBC encrypts padded plaintext with AES-256 in CBC mode.
func EncryptCBC(key FittedKey, iv IV, padded []byte) ([]byte, error) {
	block, err := newBlock(key, padded)
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// DecryptCBC decrypts ciphertext with AES-256 in CBC mode and returns the still padded plaintext.
// A wrong key is not detected here.
func DecryptCBC(key FittedKey, iv IV, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(key, ciphertext)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(plaintext, ciphertext)

	return plaintext, nil
}

// newBlock checks block alignment and builds the AES cipher for one call.
// CryptBlocks panics on misaligned input, so the check has to come first.
func newBlock(key FittedKey, data []byte) (cipher.Block, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data blocks", ErrCipher)
	}

	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the block size", ErrCipher, len(data))
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: creating cipher: %v", ErrCipher, err)
	}

	return block, nil
}
