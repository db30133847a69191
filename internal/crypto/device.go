package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Device key derivation parameters. Unlike the vault key, the saved
// password has no legacy-format constraint, so a proper KDF is used.
const (
	deviceKDFIters = 210000
	deviceKeySize  = 32
)

// deviceKDFSalt domain-separates the device key from any other use of the
// device secret. Fixed for the application, not per-user: the device secret
// itself is unique per installation.
var deviceKDFSalt = []byte("passvault/device-cipher/v1")

type deviceCipher struct {
	aead cipher.AEAD
}

// NewDeviceCipher derives the device-fixed key from the installation's
// device secret via PBKDF2-SHA256 and returns an AES-256-GCM cipher over
// it. Returns an error if the secret is empty.
func NewDeviceCipher(deviceSecret string) (DeviceCipher, error) {
	if deviceSecret == "" {
		return nil, ErrEmptyPassword
	}

	key := pbkdf2.Key([]byte(deviceSecret), deviceKDFSalt, deviceKDFIters, deviceKeySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}

	return &deviceCipher{aead: aead}, nil
}

func (d *deviceCipher) EncryptPassword(plaintext string) (string, error) {
	nonce := make([]byte, d.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCrypto, err)
	}

	// Prepend the nonce so DecryptPassword can split it back out.
	blob := d.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (d *deviceCipher) DecryptPassword(blobB64 string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	nonceSize := d.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrMalformedCiphertext)
	}

	nonce, ct := blob[:nonceSize], blob[nonceSize:]
	plain, err := d.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return string(plain), nil
}
