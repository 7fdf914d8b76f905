package encryption

// Result represents the outcome of one encrypt or decrypt call.
// It is the JSON object printed by the command line.
type Result struct {
	// Success is false whenever Error is set
	Success bool `json:"success"`

	// EncryptedPath is the envelope written by an encrypt call
	EncryptedPath string `json:"encrypted_path,omitempty"`

	// IV is the standard base64 encoding of the IV stored in the envelope
	IV string `json:"iv,omitempty"`

	// DecryptedPath is the plaintext written by a decrypt call
	DecryptedPath string `json:"decrypted_path,omitempty"`

	// Error is the human-readable failure message
	Error string `json:"error,omitempty"`

	// Err keeps the wrapped error for errors.Is checks
	Err error `json:"-"`

	// Size of the written file in bytes
	Size int64 `json:"-"`
}

// Failure builds an unsuccessful Result from err.
func Failure(err error) Result {
	return Result{Error: err.Error(), Err: err}
}
