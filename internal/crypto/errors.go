package crypto

import (
	"errors"
	"fmt"
)

// ErrCrypto is the class error for all failures in this package. Every
// specific error below wraps it, so callers can match the whole taxonomy
// with errors.Is(err, ErrCrypto).
var ErrCrypto = errors.New("crypto operation failed")

var (
	// ErrEmptyPassword indicates a key derivation attempt from an empty
	// password. The legacy stretch loop never terminates on empty input,
	// so it is rejected up front instead.
	ErrEmptyPassword = fmt.Errorf("%w: empty password", ErrCrypto)

	// ErrInvalidKeyLength indicates a key that is not exactly KeySize bytes.
	ErrInvalidKeyLength = fmt.Errorf("%w: invalid key length", ErrCrypto)

	// ErrInvalidIVLength indicates an IV that does not decode to exactly
	// one cipher block.
	ErrInvalidIVLength = fmt.Errorf("%w: invalid iv length", ErrCrypto)

	// ErrMalformedCiphertext indicates ciphertext that is not valid Base64
	// or not a whole number of cipher blocks.
	ErrMalformedCiphertext = fmt.Errorf("%w: malformed ciphertext", ErrCrypto)

	// ErrBadPadding indicates PKCS#7 padding that failed validation after
	// decryption, usually meaning a wrong key or IV.
	ErrBadPadding = fmt.Errorf("%w: bad padding", ErrCrypto)
)
