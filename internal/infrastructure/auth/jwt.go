// Package auth verifies the bearer tokens issued by the identity service.
// Token minting lives there; this service only validates and extracts the
// caller identity.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller identity embedded in an access token. UserID and
// IsMedUser are authoritative; the profile itself is owned by the external
// identity service.
type Claims struct {
	UserID    uint `json:"user_id"`
	IsMedUser bool `json:"is_med_user"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.UserID == 0 {
		return nil, fmt.Errorf("token carries no user identity")
	}

	return claims, nil
}
