package encryption

import (
	"errors"

	"github.com/idelchi/imgenc/internal/fileutil"
)

var (
	// ErrIO is returned when an input cannot be read or an output cannot be written.
	ErrIO = errors.New("i/o error")
	// ErrTooLarge is returned, together with ErrIO, when an input exceeds the configured size limit.
	ErrTooLarge = fileutil.ErrTooLarge
	// ErrNotImage is returned when image-only mode rejects an input.
	ErrNotImage = fileutil.ErrNotImage
	// ErrFormat is returned when an envelope is too short or its ciphertext is misaligned.
	ErrFormat = errors.New("malformed envelope")
	// ErrCipher is returned when data handed to the block cipher is not aligned with the AES block size.
	ErrCipher = errors.New("cipher error")
	// ErrPadding is returned when PKCS7 padding is missing or malformed.
	ErrPadding = errors.New("invalid padding")
)
