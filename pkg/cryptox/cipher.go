package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CipherKeySize is the required secret key length (AES-256).
const CipherKeySize = 32

// envelopeSeparator joins IV and ciphertext. It is outside the hex alphabet.
const envelopeSeparator = ":"

var (
	// ErrInvalidKey is returned when the cipher key is missing or not 32 bytes.
	ErrInvalidKey = errors.New("cipher key must be 32 bytes")
	// ErrDecrypt is returned for any envelope that cannot be decrypted.
	ErrDecrypt = errors.New("failed to decrypt secret")
)

// Cipher encrypts individual secret values with AES-256-CBC. Every call to
// Encrypt draws a fresh 16 byte IV, so equal plaintexts never produce equal
// envelopes.
//
// Envelopes have the form <32 hex IV>:<hex ciphertext>.
type Cipher struct {
	block cipher.Block
	rand  io.Reader
}

// NewCipher returns a Cipher keyed with key. The key is copied.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != CipherKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}
	block, err := aes.NewCipher(bytes.Clone(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return &Cipher{block: block, rand: rand.Reader}, nil
}

// Encrypt encrypts plaintext and returns its envelope.
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + envelopeSeparator + hex.EncodeToString(ciphertext), nil
}

// EncryptString is Encrypt for string secrets.
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	return c.Encrypt([]byte(plaintext))
}

// Decrypt reverses Encrypt. Any malformed, truncated or foreign envelope
// returns an error wrapping ErrDecrypt and no plaintext.
func (c *Cipher) Decrypt(envelope string) ([]byte, error) {
	parts := strings.Split(envelope, envelopeSeparator)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: malformed envelope", ErrDecrypt)
	}

	if len(parts[0]) != hex.EncodedLen(aes.BlockSize) {
		return nil, fmt.Errorf("%w: invalid iv length", ErrDecrypt)
	}
	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid iv encoding", ErrDecrypt)
	}

	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext encoding", ErrDecrypt)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: invalid ciphertext length", ErrDecrypt)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return plaintext, nil
}

// DecryptString is Decrypt for string secrets.
func (c *Cipher) DecryptString(envelope string) (string, error) {
	b, err := c.Decrypt(envelope)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, errors.New("invalid padding")
	}
	if subtleEqualPad(b[len(b)-n:], byte(n)) != 1 {
		return nil, errors.New("invalid padding")
	}
	return b[:len(b)-n], nil
}

func subtleEqualPad(pad []byte, n byte) int {
	var diff byte
	for _, v := range pad {
		diff |= v ^ n
	}
	if diff == 0 {
		return 1
	}
	return 0
}

// ParseCipherKey decodes a hex encoded 32 byte key.
func ParseCipherKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: not hex encoded", ErrInvalidKey)
	}
	if len(key) != CipherKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}
	return key, nil
}

// LoadCipherKey resolves the cipher key from either a hex value or a file
// holding one. The file wins when both are set.
func LoadCipherKey(value, file string) ([]byte, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read cipher key file: %w", err)
		}
		return ParseCipherKey(string(data))
	}
	return ParseCipherKey(value)
}

// GenerateCipherKey returns a new random key, hex encoded.
func GenerateCipherKey() (string, error) {
	key := make([]byte, CipherKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate cipher key: %w", err)
	}
	return hex.EncodeToString(key), nil
}
