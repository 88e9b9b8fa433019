package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"house_rent/internal/common"
	"house_rent/internal/common/security"
)

type contextKey string

const (
	SubjectKindCtxKey contextKey = "subjectKind"
	SubjectIDCtxKey   contextKey = "subjectID"
)

// Authenticator requires a verified bearer token (jwtauth.Verifier must run
// earlier in the chain) and copies the tagged subject claims into the request
// context. A missing token and an invalid one both answer 401, with distinct
// messages.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		kind, subjectID, err := security.SubjectFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), SubjectKindCtxKey, kind)
		ctx = context.WithValue(ctx, SubjectIDCtxKey, subjectID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSubjectKind rejects tokens issued for a different subject kind. A
// syntactically valid tenant token on an owner route is still a 401.
func RequireSubjectKind(kind security.SubjectKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := r.Context().Value(SubjectKindCtxKey).(security.SubjectKind)
			if !ok || got != kind {
				common.RespondWithError(w, http.StatusUnauthorized, "Token was not issued for a "+string(kind))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSubjectFromContext returns the authenticated subject placed there by
// Authenticator.
func GetSubjectFromContext(ctx context.Context) (security.SubjectKind, string, bool) {
	kind, ok := ctx.Value(SubjectKindCtxKey).(security.SubjectKind)
	if !ok {
		return "", "", false
	}
	subjectID, ok := ctx.Value(SubjectIDCtxKey).(string)
	if !ok {
		return "", "", false
	}
	return kind, subjectID, true
}
