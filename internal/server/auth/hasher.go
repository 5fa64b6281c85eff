// Package auth implements the authentication core: argon2id password
// hashing and JWT issuance/validation for the HTTP API.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/akorchak/caseflow/internal/common"
)

// Argon2id parameters. Encoded into every produced hash, so changing them
// only affects new hashes; old hashes stay verifiable.
const (
	argonMemory  uint32 = 64 * 1024 // KiB
	argonTime    uint32 = 3
	argonThreads uint8  = 2
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

// HashPassword derives an argon2id hash of password with a fresh random salt
// and returns it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<key_b64>
//
// Any non-empty password is acceptable; an error is returned only when the
// system random source fails.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword re-derives the key using the parameters embedded in encoded
// and compares in constant time. A wrong password yields (false, nil); a
// structurally invalid hash yields an error wrapping common.ErrInvalidHash.
func VerifyPassword(password, encoded string) (bool, error) {
	memory, time, threads, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

// decodeHash parses the 6-segment PHC string produced by HashPassword.
func decodeHash(encoded string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		err = fmt.Errorf("%w: expected argon2id PHC string", common.ErrInvalidHash)
		return
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		err = fmt.Errorf("%w: bad version segment", common.ErrInvalidHash)
		return
	}
	if version != argon2.Version {
		err = fmt.Errorf("%w: unsupported argon2 version %d", common.ErrInvalidHash, version)
		return
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		err = fmt.Errorf("%w: bad parameter segment", common.ErrInvalidHash)
		return
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		err = fmt.Errorf("%w: bad salt encoding", common.ErrInvalidHash)
		return
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		err = fmt.Errorf("%w: bad key encoding", common.ErrInvalidHash)
		return
	}
	return
}
