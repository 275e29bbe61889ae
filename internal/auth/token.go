package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager signs and verifies bearer tokens. The only identity claim is
// the user id; role and profile are looked up fresh on every request so a
// role change takes effect immediately.
type Manager struct {
	secret    []byte
	expiresIn time.Duration
}

func NewManager(secret string, expiresIn time.Duration) *Manager {
	return &Manager{
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

func (m *Manager) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies signature and expiry and returns the user id. Expired
// tokens surface as jwt.ErrTokenExpired so callers can distinguish a
// stale session from a forged token.
func (m *Manager) Parse(raw string) (uint, error) {
	token, err := jwt.Parse(raw, m.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, err
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}

// Expiry recovers the signed expiry of a token, used to bound how long a
// logged-out token must stay blacklisted.
func (m *Manager) Expiry(raw string) (time.Time, error) {
	token, err := jwt.Parse(raw, m.keyFunc)
	if err != nil {
		return time.Time{}, ErrInvalidToken
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrInvalidToken
	}

	return exp.Time, nil
}

func (m *Manager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrTokenMalformed
	}
	return m.secret, nil
}
