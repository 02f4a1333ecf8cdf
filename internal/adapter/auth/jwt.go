package auth

import (
	"context"
	"errors"
	"fmt"
	"tasktracker/internal/core/ports"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

const userIDClaim = "user_id"

// JWTAuthenticator verifies HS256 bearer tokens carrying a numeric
// user_id claim.
type JWTAuthenticator struct {
	secret []byte
	issuer string
}

var _ ports.Authenticator = (*JWTAuthenticator)(nil)

func NewJWTAuthenticator(secret, issuer string) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTAuthenticator{secret: []byte(secret), issuer: issuer}, nil
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, tokenString string) (uint64, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		options = append(options, jwt.WithIssuer(a.issuer))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, options...)
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// JSON numbers decode as float64.
	rawID, ok := claims[userIDClaim].(float64)
	if !ok || rawID < 1 || rawID != float64(uint64(rawID)) {
		return 0, fmt.Errorf("%w: missing %s claim", ErrInvalidToken, userIDClaim)
	}

	return uint64(rawID), nil
}

// IssueToken signs a token for userID. The API never issues tokens itself;
// it is used by tooling and tests that need a valid bearer credential.
func (a *JWTAuthenticator) IssueToken(userID uint64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		userIDClaim: userID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	if a.issuer != "" {
		claims["iss"] = a.issuer
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
