// Package encryption provides whole-file AES-256 CBC encryption of images with a passphrase.
// Encrypted files are stored as the 16-byte IV followed by the PKCS7-padded ciphertext.
// There is no header and no authentication tag.
package encryption
