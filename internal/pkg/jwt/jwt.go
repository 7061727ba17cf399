package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(username string) (token string, expiresAt int64, err error)
	// ParseAccessToken verifies signature, expiry and token type and returns
	// the username the token was issued to.
	ParseAccessToken(tokenString string) (username string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration %q: %w", accessTokenExpirationTime, err)
	}
	if expDuration <= 0 {
		return nil, fmt.Errorf("access token expiration must be positive, got %s", expDuration)
	}

	return &JWTService{
		accessTokenExpiration: expDuration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(username string) (token string, expiresAt int64, err error) {
	now := j.now()
	expiresAt = now.Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"jti":  uuid.NewString(),
		"sub":  username,
		"type": TokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) ParseAccessToken(tokenString string) (username string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeAccess {
		return "", jwt.ErrInvalidJWT()
	}

	if token.Subject() == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return token.Subject(), nil
}
