package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/security"
)

// TokenService issues and verifies HS256 tokens carrying
// {sub, email, iat, exp}. The secret and expiry window are process-lifetime
// configuration with no rotation semantics.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *TokenService) Generate(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", domainerr.Infra("signing token", err)
	}
	return signed, nil
}

// Verify collapses every failure mode (malformed, expired, bad signature) into
// one infra error; callers treat any failure as an authentication reject.
func (s *TokenService) Verify(tokenStr string) (*security.Claims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerr.Infra("invalid token", err)
	}
	if !tkn.Valid {
		return nil, domainerr.Infra("invalid token", nil)
	}
	out := &security.Claims{
		Sub:   claims.Subject,
		Email: claims.Email,
	}
	if claims.IssuedAt != nil {
		out.Iat = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.Exp = claims.ExpiresAt.Unix()
	}
	return out, nil
}

var (
	_ security.TokenIssuer   = (*TokenService)(nil)
	_ security.TokenVerifier = (*TokenService)(nil)
)
