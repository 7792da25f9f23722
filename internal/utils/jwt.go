package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued token stays valid. There is no refresh.
const TokenLifetime = time.Hour

// JWTClaims custom claims for JWT
type JWTClaims struct {
	PrincipalID int64  `json:"id"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey []byte
	lifetime  time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, lifetime time.Duration) *JWTUtil {
	return &JWTUtil{secretKey: []byte(secretKey), lifetime: lifetime, now: time.Now}
}

// WithClock replaces the time source used for issuing and validating tokens.
func (ju *JWTUtil) WithClock(now func() time.Time) *JWTUtil {
	ju.now = now
	return ju
}

// GenerateToken generates a new JWT token
func (ju *JWTUtil) GenerateToken(principalID int64, role string) (string, error) {
	issuedAt := ju.now()
	claims := &JWTClaims{
		PrincipalID: principalID,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ju.lifetime)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Subject:   strconv.FormatInt(principalID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the JWT token. Expired tokens yield an error that
// matches jwt.ErrTokenExpired.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ju.secretKey, nil
	}, jwt.WithTimeFunc(ju.now), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
