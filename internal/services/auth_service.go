package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"plantstore/internal/apperr"
)

// AuthService issues and verifies the stateless bearer tokens. Tokens are
// self-contained: signature plus expiry is the whole lifecycle, there is no
// revocation list.
type AuthService struct {
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

type Claims struct {
	UserID string `json:"userId"`
	Admin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

func NewAuthService(secret string, ttl time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

func (s *AuthService) Issue(userID string, admin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error signing token")
		return "", err
	}
	return tokenString, nil
}

// Verify checks signature and expiry. Expired and malformed tokens are
// distinct failures; callers surface them differently.
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, apperr.ErrTokenMalformed
	}

	return claims, nil
}
