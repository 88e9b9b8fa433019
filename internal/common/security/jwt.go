package security

import (
	"crypto/rand"
	"errors"
	"log"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// SubjectKind tags every issued token so verification is uniform no matter
// which login flow produced it.
type SubjectKind string

const (
	SubjectTenant SubjectKind = "tenant"
	SubjectOwner  SubjectKind = "owner"
)

// Tokens issues and verifies the signed bearer tokens used by the API. It is
// constructed once in main and passed down; the signing secret lives only
// inside it, so a process restart invalidates all outstanding tokens.
type Tokens struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokens(secret []byte, exp time.Duration) *Tokens {
	return &Tokens{
		auth: jwtauth.New("HS256", secret, nil),
		exp:  exp,
	}
}

// NewRandomSecret returns a fresh 64-byte signing secret, matching the
// behavior of generating the key at process start when none is configured.
func NewRandomSecret() []byte {
	secret := make([]byte, 64)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("Could not generate signing secret: %v", err)
	}
	return secret
}

// Auth exposes the underlying JWTAuth for jwtauth.Verifier.
func (t *Tokens) Auth() *jwtauth.JWTAuth {
	return t.auth
}

// Generate signs a token for the given subject.
func (t *Tokens) Generate(kind SubjectKind, subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"subject_kind": string(kind),
		"subject_id":   subjectID,
		"exp":          time.Now().Add(t.exp).Unix(),
		"iat":          time.Now().Unix(),
	}
	_, tokenString, err := t.auth.Encode(claims)
	return tokenString, err
}

// SubjectFromClaims extracts the tagged subject pair from verified claims.
func SubjectFromClaims(claims map[string]interface{}) (SubjectKind, string, error) {
	kind, ok := claims["subject_kind"].(string)
	if !ok {
		return "", "", errors.New("subject_kind claim is missing or not a string")
	}
	id, ok := claims["subject_id"].(string)
	if !ok {
		return "", "", errors.New("subject_id claim is missing or not a string")
	}
	return SubjectKind(kind), id, nil
}
