package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mvirden/Confidant_Go/internal/domain"
)

// Claims are the verified contents of a bearer token: the authenticated
// subject's store ID and username.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, unencrypted bearer tokens.
// Stateless: there is no revocation list, and tokens carry no expiry
// unless a TTL is configured.
type TokenService interface {
	Issue(userID, username string) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with HMAC-SHA256.
// A ttl of 0 disables expiry.
func NewTokenService(secret []byte, ttl time.Duration) TokenService {
	return &tokenService{secret: secret, ttl: ttl}
}

func (s *tokenService) Issue(userID, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
	}
	if s.ttl > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
