package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-hair-salon/internal/app"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
	"github.com/MKhiriev/go-hair-salon/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the token's email claim in the request context under [utils.EmailCtxKey]
// before delegating to the next handler.
//
// Every rejection (missing header, unparsable header, expired token, foreign
// signature, other algorithm) answers 403 {"message":"Forbidden Access"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			forbidden(w)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			forbidden(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			forbidden(w)
			return
		}

		ctx = context.WithValue(ctx, utils.EmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly must run after auth. It looks up the account by the verified
// email and lets the request through only when its role is "admin". The
// token is not re-validated.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		email, ok := utils.GetEmailFromContext(ctx)
		if !ok {
			log.Err(ErrNoIdentity).Send()
			forbidden(w)
			return
		}

		isAdmin, err := h.services.AuthService.IsAdmin(ctx, email)
		if err != nil {
			log.Err(err).Str("email", email).Msg("admin check failed")
			forbidden(w)
			return
		}
		if !isAdmin {
			log.Err(ErrNotAdmin).Str("email", email).Send()
			forbidden(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func forbidden(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, models.Message{Message: app.MsgForbiddenAccess}, http.StatusForbidden)
}

// getTokenFromAuthHeader extracts the token from an "Authorization" header
// value of the form "<scheme> <token>". The scheme itself is not checked.
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than two
//     space-separated parts.
//   - [ErrEmptyToken] if the second part is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
