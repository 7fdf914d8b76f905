package encryption

// KeySize is the AES-256 key size in bytes.
const KeySize = 32

// keyFill pads passphrases shorter than KeySize.
const keyFill = '0'

// FittedKey is a passphrase truncated or padded to exactly KeySize bytes.
type FittedKey [KeySize]byte

// FitKey maps a passphrase of any length onto an AES-256 key.
// Longer passphrases are truncated to their first 32 bytes, shorter ones are
// right-padded with ASCII '0'. This is not a key derivation function.
func FitKey(passphrase []byte) FittedKey {
	var key FittedKey

	n := copy(key[:], passphrase)

	for i := n; i < KeySize; i++ {
		key[i] = keyFill
	}

	return key
}
