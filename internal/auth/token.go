package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued session token stays valid. Fixed policy:
// logout does not revoke tokens server-side, they expire naturally.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for every verification failure. Expired,
// tampered and malformed tokens are deliberately indistinguishable so
// callers can only treat the bearer as unauthenticated.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user identity inside a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

// TokenManager issues and verifies HS256-signed session tokens.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenManager(secretKey []byte) *TokenManager {
	return &TokenManager{secretKey: secretKey, ttl: TokenTTL}
}

// Issue signs a token asserting "this bearer is user userID", valid for the
// manager's TTL from now.
func (m *TokenManager) Issue(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(m.secretKey)
}

// Verify checks signature, structure and expiry and returns the embedded
// user ID. All failures collapse to ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
