package encryption

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/idelchi/imgenc/internal/fileutil"
)

const ownerReadWrite = 0o600

// Processor encrypts and decrypts whole files.
// It holds no per-call state and is safe for concurrent use.
type Processor struct {
	// maxSize caps the number of bytes read from an input file, zero means no limit
	maxSize int64

	// random is the IV source, nil selects crypto/rand
	random io.Reader

	// imagesOnly restricts encryption to JPEG, PNG, GIF and BMP inputs
	imagesOnly bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithMaxSize rejects input files larger than size bytes.
func WithMaxSize(size int64) Option {
	return func(p *Processor) {
		p.maxSize = size
	}
}

// WithRandom replaces the IV source.
func WithRandom(random io.Reader) Option {
	return func(p *Processor) {
		p.random = random
	}
}

// WithImagesOnly refuses to encrypt anything but JPEG, PNG, GIF and BMP files.
func WithImagesOnly(enabled bool) Option {
	return func(p *Processor) {
		p.imagesOnly = enabled
	}
}

// NewProcessor creates a Processor with the given options.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// EncryptFile encrypts the file at path with the passphrase and writes the envelope
// next to it, see fileutil.EncryptedPath. Failures are reported in the Result.
func (p *Processor) EncryptFile(path, passphrase string) (result Result) {
	defer recoverInto(&result)

	outPath, iv, size, err := p.encrypt(path, []byte(passphrase))
	if err != nil {
		return Failure(err)
	}

	return Result{
		Success:       true,
		EncryptedPath: outPath,
		IV:            base64.StdEncoding.EncodeToString(iv[:]),
		Size:          size,
	}
}

// DecryptFile decrypts the envelope at path with the passphrase and writes the plaintext to outPath.
// Failures are reported in the Result.
func (p *Processor) DecryptFile(path, passphrase, outPath string) (result Result) {
	defer recoverInto(&result)

	size, err := p.decrypt(path, []byte(passphrase), outPath)
	if err != nil {
		return Failure(err)
	}

	return Result{
		Success:       true,
		DecryptedPath: outPath,
		Size:          size,
	}
}

func (p *Processor) encrypt(path string, passphrase []byte) (string, IV, int64, error) {
	plaintext, err := p.read(path)
	if err != nil {
		return "", IV{}, 0, err
	}

	if p.imagesOnly {
		if err := fileutil.CheckImage(path, plaintext); err != nil {
			return "", IV{}, 0, fmt.Errorf("checking %q: %w", path, err)
		}
	}

	padded := Pad(plaintext)
	key := FitKey(passphrase)

	iv, err := NewIV(p.random)
	if err != nil {
		return "", IV{}, 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	ciphertext, err := EncryptCBC(key, iv, padded)
	if err != nil {
		return "", IV{}, 0, fmt.Errorf("encrypting %q: %w", path, err)
	}

	outPath := fileutil.EncryptedPath(path)

	size, err := fileutil.WriteAtomic(outPath, BuildEnvelope(iv, ciphertext), ownerReadWrite)
	if err != nil {
		return "", IV{}, 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return outPath, iv, size, nil
}

func (p *Processor) decrypt(path string, passphrase []byte, outPath string) (int64, error) {
	envelope, err := p.read(path)
	if err != nil {
		return 0, err
	}

	iv, ciphertext, err := ParseEnvelope(envelope)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", path, err)
	}

	padded, err := DecryptCBC(FitKey(passphrase), iv, ciphertext)
	if err != nil {
		return 0, fmt.Errorf("decrypting %q: %w", path, err)
	}

	plaintext, err := Unpad(padded)
	if err != nil {
		return 0, fmt.Errorf("decrypting %q: %w (wrong key or corrupted file)", path, err)
	}

	size, err := fileutil.WriteAtomic(outPath, plaintext, ownerReadWrite)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return size, nil
}

func (p *Processor) read(path string) ([]byte, error) {
	data, err := fileutil.ReadFile(path, p.maxSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return data, nil
}

// recoverInto turns a panic into a failed Result so callers always get one Result back.
func recoverInto(result *Result) {
	if r := recover(); r != nil {
		*result = Failure(fmt.Errorf("internal error: %v", r))
	}
}
