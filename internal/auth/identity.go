package auth

import (
	"errors"
	"net/http"
	"strings"
)

// Identity is the resolved caller attached to each request.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
}

// IdentityProvider resolves the caller of an inbound request. Handlers only
// depend on this interface so the demo stub can be swapped for a real one.
type IdentityProvider interface {
	Resolve(r *http.Request) (Identity, error)
}

// StaticIdentity treats every request as authenticated under one fixed
// identity. It performs no credential check.
type StaticIdentity struct {
	Identity Identity
}

func NewStaticIdentity(subject, email string) *StaticIdentity {
	return &StaticIdentity{Identity: Identity{Subject: subject, Email: email}}
}

func (s *StaticIdentity) Resolve(*http.Request) (Identity, error) {
	return s.Identity, nil
}

// TokenIdentity resolves the caller from an HS256 bearer token.
type TokenIdentity struct {
	secret []byte
}

func NewTokenIdentity(secret []byte) (*TokenIdentity, error) {
	if len(secret) == 0 {
		return nil, errors.New("NewTokenIdentity(): empty JWT secret")
	}
	return &TokenIdentity{secret: secret}, nil
}

func (t *TokenIdentity) Resolve(r *http.Request) (Identity, error) {
	tokenString, err := bearerToken(r)
	if err != nil {
		return Identity{}, err
	}
	claims, err := ValidateToken(t.secret, tokenString)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Subject: claims.Subject, Email: claims.Email}, nil
}

// 웹소켓 클라이언트는 헤더 대신 ?token= 쿼리를 사용할 수 있음
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			return token, nil
		}
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}
