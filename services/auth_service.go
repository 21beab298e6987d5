package services

import (
	"errors"
	"time"

	"plantnet/models"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) IssueToken(email string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", models.NewInternalError("failed to sign session token", err)
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, &models.AppError{Kind: models.KindUnauthorized, Message: "unauthorized access", Err: err}
	}
	if !token.Valid {
		return nil, models.NewUnauthorizedError("unauthorized access")
	}
	if claims.Email == "" {
		return nil, &models.AppError{Kind: models.KindUnauthorized, Message: "unauthorized access", Err: errors.New("token has no email")}
	}
	return claims, nil
}
