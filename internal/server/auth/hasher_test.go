package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/akorchak/caseflow/internal/common"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected distinct hashes for the same password")
	}

	for _, h := range []string{h1, h2} {
		ok, err := VerifyPassword("pw", h)
		if err != nil {
			t.Fatalf("VerifyPassword error: %v", err)
		}
		if !ok {
			t.Fatal("expected password to verify against each hash")
		}
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("expected no error on mismatch, got %v", err)
	}
	if ok {
		t.Fatal("expected mismatch to return false")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA"},
		{"bad base64", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VerifyPassword("pw", tc.hash)
			if !errors.Is(err, common.ErrInvalidHash) {
				t.Fatalf("expected common.ErrInvalidHash, got %v", err)
			}
		})
	}
}
