package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// SessionCookie is the cookie name the session token travels in.
const SessionCookie = "session"

// HashPassword hashes a plaintext password with bcrypt.
// The plaintext is never stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored hash against a login attempt.
// Returns ErrInvalidCredentials on mismatch; callers must not
// distinguish this from an unknown email.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// SessionClaims is the JWT payload for a logged-in user.
// Subject carries the generated user ID; email is a display claim
// only and is never used for ownership checks.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewSessionToken creates a signed HS256 session token for a user
func NewSessionToken(userID, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a session token and returns the user ID
// and email it was issued for. Expired, malformed, or wrongly signed
// tokens all come back as ErrInvalidToken.
func ParseSessionToken(tokenStr, secret string) (userID, email string, err error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}
