package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/jmontesdeoca/passvault/models"
)

// KeySize is the vault key length in bytes (AES-256).
const KeySize = 32

type engine struct{}

// NewEngine returns the stateless vault encryption engine.
func NewEngine() Engine {
	return &engine{}
}

func (e *engine) DeriveKey(password string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	key := []byte(password)
	for len(key) < KeySize {
		key = append(key, key...)
	}
	return key[:KeySize], nil
}

func (e *engine) Encrypt(plaintext string, key []byte, ivB64 string) (string, error) {
	block, iv, err := newCBCMaterial(key, ivB64)
	if err != nil {
		return "", err
	}

	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (e *engine) Decrypt(ciphertextB64 string, key []byte, ivB64 string) (string, error) {
	block, iv, err := newCBCMaterial(key, ivB64)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	if len(blob) == 0 || len(blob)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %d bytes", ErrMalformedCiphertext, len(blob))
	}

	out := make([]byte, len(blob))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, blob)

	plain, err := unpadPKCS7(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (e *engine) EncryptRecord(record models.SecretRecord, password, ivB64 string) (models.SecretRecord, error) {
	key, err := e.DeriveKey(password)
	if err != nil {
		return models.SecretRecord{}, err
	}
	return e.transformRecord(record, key, ivB64, e.Encrypt)
}

func (e *engine) DecryptRecord(record models.SecretRecord, password, ivB64 string) (models.SecretRecord, error) {
	key, err := e.DeriveKey(password)
	if err != nil {
		return models.SecretRecord{}, err
	}
	return e.transformRecord(record, key, ivB64, e.Decrypt)
}

func (e *engine) EncryptBatch(records []models.SecretRecord, password, ivB64 string) ([]models.SecretRecord, error) {
	return e.transformBatch(records, password, ivB64, e.Encrypt)
}

func (e *engine) DecryptBatch(records []models.SecretRecord, password, ivB64 string) ([]models.SecretRecord, error) {
	return e.transformBatch(records, password, ivB64, e.Decrypt)
}

func (e *engine) IsEncrypted(text string) bool {
	if text == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(text)
	return err == nil
}

type fieldTransform func(value string, key []byte, ivB64 string) (string, error)

// transformRecord applies fn to the three data fields of a copy of record,
// leaving ID and OwnerID untouched. The first field failure aborts.
func (e *engine) transformRecord(record models.SecretRecord, key []byte, ivB64 string, fn fieldTransform) (models.SecretRecord, error) {
	out := record.Clone()

	fieldA, err := fn(record.FieldA, key, ivB64)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("field A: %w", err)
	}
	fieldB, err := fn(record.FieldB, key, ivB64)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("field B: %w", err)
	}
	fieldC, err := fn(record.FieldC, key, ivB64)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("field C: %w", err)
	}

	out.FieldA, out.FieldB, out.FieldC = fieldA, fieldB, fieldC
	return out, nil
}

// transformBatch derives the key once and applies the record transform to
// every element, preserving order. Atomic: any failure returns no results.
func (e *engine) transformBatch(records []models.SecretRecord, password, ivB64 string, fn fieldTransform) ([]models.SecretRecord, error) {
	key, err := e.DeriveKey(password)
	if err != nil {
		return nil, err
	}

	out := make([]models.SecretRecord, 0, len(records))
	for i, record := range records {
		transformed, err := e.transformRecord(record, key, ivB64, fn)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, record.ID, err)
		}
		out = append(out, transformed)
	}
	return out, nil
}

// newCBCMaterial validates the key and Base64 IV and returns the cipher
// block plus the decoded IV.
func newCBCMaterial(key []byte, ivB64 string) (cipher.Block, []byte, error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(key))
	}

	iv, err := base64.StdEncoding.DecodeString(ivB64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidIVLength, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInvalidIVLength, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return block, iv, nil
}

func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadPadding, len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d", ErrBadPadding, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrBadPadding
		}
	}
	return data[:len(data)-n], nil
}
