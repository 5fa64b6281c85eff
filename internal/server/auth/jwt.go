package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akorchak/caseflow/internal/common"
)

const bearerPrefix = "Bearer "

// Claims is the identity payload embedded in an issued token: the subject
// (user ID), the email at issuance time, and the standard expiry. Claims are
// immutable once issued; a later email change does not invalidate
// outstanding tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService issues and validates signed identity tokens. It is immutable
// after construction and safe for unsynchronized concurrent use.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

// NewTokenService builds a TokenService signing with secret; issued tokens
// expire after validity.
func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue signs an HS256 token for the given subject and email, expiring at
// now + the configured validity.
func (s *TokenService) Issue(subject, email string) (string, error) {
	now := time.Now()
	expires := now.Add(s.validity)
	if s.validity > 0 && !expires.After(now) {
		// Only reachable with a pathologically large validity overflowing
		// the time arithmetic.
		return "", fmt.Errorf("%w: token expiry overflow", common.ErrorInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Email: email,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate decodes tokenString, verifies the HMAC signature against the
// configured secret, and checks expiry. Every failure sub-case (malformed
// encoding, signature mismatch, expiry, algorithm mismatch) surfaces as
// common.ErrInvalidToken so the caller cannot tell them apart; the wrapped
// detail stays available for server-side logs.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearer returns the token portion of an Authorization header value.
// The value must start with the exact literal "Bearer " (case-sensitive, one
// space) and carry a non-empty remainder.
func ExtractBearer(headerValue string) (string, error) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return "", common.ErrInvalidAuthHeader
	}
	token := headerValue[len(bearerPrefix):]
	if token == "" {
		return "", common.ErrInvalidAuthHeader
	}
	return token, nil
}
