package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens issued by the upstream identity service.
// This app never mints tokens itself.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	Verify(tokenString string) (map[string]interface{}, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// Verify decodes and validates a token string, returning its claims.
func (j *JWTService) Verify(tokenString string) (map[string]interface{}, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return nil, err
	}
	if err := jwt.Validate(token); err != nil {
		return nil, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return nil, err
	}
	return claims, nil
}
