package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// TokenManager issues and validates bearer tokens for API clients that
// cannot keep a cookie session.
type TokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// Claims are the custom JWT claims of an access token.
type Claims struct {
	ProfileID uint64 `json:"profile_id"`
	ChurchID  uint64 `json:"church_id"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a token manager signing with HS256.
func NewTokenManager(secretKey string, tokenDuration time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate creates a signed token for the given profile.
func (m *TokenManager) Generate(profileID, churchID uint64) (string, error) {
	now := time.Now()
	claims := &Claims{
		ProfileID: profileID,
		ChurchID:  churchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(profileID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns its claims.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ProfileID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
