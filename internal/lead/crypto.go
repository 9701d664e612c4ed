package lead

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const keySize = 32

var ErrKeyTooShort = errors.New("encryption key must be at least 32 bytes")

// FieldEncryptor seals single text fields with AES-256-CBC. Output is
// "hex(iv):hex(ciphertext)" with PKCS#7 padding.
type FieldEncryptor struct {
	key []byte
}

// NewFieldEncryptor keeps the first 32 bytes of secret. A shorter secret is
// accepted here and rejected on first use, so the service can still boot.
func NewFieldEncryptor(secret string) *FieldEncryptor {
	key := []byte(secret)
	if len(key) > keySize {
		key = key[:keySize]
	}
	return &FieldEncryptor{key: key}
}

func (e *FieldEncryptor) Encrypt(plaintext string) (string, error) {
	if len(e.key) != keySize {
		return "", ErrKeyTooShort
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

func (e *FieldEncryptor) Decrypt(sealed string) (string, error) {
	if len(e.key) != keySize {
		return "", ErrKeyTooShort
	}

	ivHex, ctHex, ok := strings.Cut(sealed, ":")
	if !ok {
		return "", errors.New("malformed ciphertext")
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", errors.New("malformed iv")
	}
	ct, err := hex.DecodeString(ctHex)
	if err != nil || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", errors.New("malformed ciphertext")
	}

	block, err := aes.NewCipher(e.key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ct)

	plain, err := unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, errors.New("invalid padding")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errors.New("invalid padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, errors.New("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}
