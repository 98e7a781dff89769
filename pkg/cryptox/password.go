package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidHash is returned when a stored password hash cannot be parsed.
	ErrInvalidHash = errors.New("invalid password hash")
	// ErrIncompatibleVersion is returned for argon2 hashes of an unknown version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams are the Argon2id cost parameters.
type HashParams struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	KeyLength   uint32
	SaltLength  uint32
}

// DefaultHashParams follows the OWASP minimum for Argon2id.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      19 * 1024,
		Iterations:  2,
		Parallelism: 1,
		KeyLength:   32,
		SaltLength:  16,
	}
}

// Hasher hashes and verifies account passwords. A Hasher is immutable once
// built and safe for concurrent use.
type Hasher struct {
	params HashParams
	pepper string
}

// NewHasher returns a Hasher using params. Zero fields fall back to the
// defaults.
func NewHasher(params HashParams, pepper string) *Hasher {
	def := DefaultHashParams()
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = def.Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = def.Parallelism
	}
	if params.KeyLength == 0 {
		params.KeyLength = def.KeyLength
	}
	if params.SaltLength == 0 {
		params.SaltLength = def.SaltLength
	}
	return &Hasher{params: params, pepper: pepper}
}

// Params returns the cost parameters new hashes are created with.
func (h *Hasher) Params() HashParams { return h.params }

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		h.params.Iterations,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify reports whether password matches encodedHash. A mismatch is not an
// error; an error is only returned when encodedHash is structurally invalid.
//
// Besides Argon2id PHC strings, bcrypt hashes ($2a$, $2b$, $2y$) are accepted
// so accounts imported from older deployments can still sign in. bcrypt
// hashes are never peppered.
func (h *Hasher) Verify(password, encodedHash string) (bool, error) {
	if isBcrypt(encodedHash) {
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
	}

	p, salt, expected, err := decodeArgon2id(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		p.Iterations,
		p.Memory,
		p.Parallelism,
		uint32(len(expected)), // #nosec G115 - bounded by decodeArgon2id
	)

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func isBcrypt(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}

// decodeArgon2id parses $argon2id$v=19$m=X,t=Y,p=Z$salt$hash.
func decodeArgon2id(encoded string) (HashParams, []byte, []byte, error) {
	var p HashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("%w: not argon2id", ErrInvalidHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: failed to parse version: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("%w: failed to parse parameters: %v", ErrInvalidHash, err)
	}
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return p, nil, nil, fmt.Errorf("%w: zero cost parameter", ErrInvalidHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, fmt.Errorf("%w: failed to decode salt", ErrInvalidHash)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 || len(hash) > 1024 {
		return p, nil, nil, fmt.Errorf("%w: failed to decode hash", ErrInvalidHash)
	}

	p.SaltLength = uint32(len(salt)) // #nosec G115
	p.KeyLength = uint32(len(hash))  // #nosec G115
	return p, salt, hash, nil
}

// NeedsRehash reports whether encodedHash should be replaced with a fresh
// hash under the current parameters. bcrypt and malformed hashes always do.
func (h *Hasher) NeedsRehash(encodedHash string) bool {
	if isBcrypt(encodedHash) {
		return true
	}
	p, _, _, err := decodeArgon2id(encodedHash)
	if err != nil {
		return true
	}
	return p.Memory != h.params.Memory ||
		p.Iterations != h.params.Iterations ||
		p.Parallelism != h.params.Parallelism ||
		p.KeyLength != h.params.KeyLength
}
