// Package token mints and verifies the signed session cookie value.
//
// The cookie proves the browser completed a login; the authoritative session
// record still lives in the session stores. Verification failures are
// treated as logged out, never as hard errors.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sableroast/storefront/internal/account/domain"
)

const issuer = "storefront"

// Default lifetimes for the two session scopes.
const (
	RememberedTTL = 30 * 24 * time.Hour
	SessionTTL    = 24 * time.Hour
)

// ErrInvalid indicates a token that failed signature or claim checks.
var ErrInvalid = errors.New("session token is invalid")

// ErrExpired indicates a token past its expiry.
var ErrExpired = errors.New("session token is expired")

// Config defines how session tokens are signed and verified.
type Config struct {
	Key []byte
	Now func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Remember bool   `json:"remember"`
}

// Mint signs a session token. Remembered sessions get the long TTL.
func (c Config) Mint(session domain.Session, remember bool) (string, error) {
	if len(c.Key) == 0 {
		return "", errors.New("session token signer is not configured")
	}
	now := c.now()

	ttl := SessionTTL
	if remember {
		ttl = RememberedTTL
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    session.Email,
		FullName: session.FullName,
		Role:     session.Role,
		Remember: remember,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the token and returns the session it carries along with the
// remember flag it was minted with.
func (c Config) Verify(value string) (domain.Session, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Session{}, false, ErrInvalid
	}
	if len(c.Key) == 0 {
		return domain.Session{}, false, errors.New("session token verifier is not configured")
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(value, &parsed, func(token *jwt.Token) (any, error) {
		return c.Key, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Session{}, false, ErrExpired
		}
		return domain.Session{}, false, ErrInvalid
	}
	if parsed.Subject == "" {
		return domain.Session{}, false, ErrInvalid
	}

	session := domain.Session{
		UserID:   parsed.Subject,
		Email:    parsed.Email,
		FullName: parsed.FullName,
		Role:     parsed.Role,
	}
	if parsed.IssuedAt != nil {
		session.LoginAt = parsed.IssuedAt.Time.UTC()
	}
	return session, parsed.Remember, nil
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
