package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyEmailClaim is returned when a structurally valid token carries no
// email claim.
var ErrEmptyEmailClaim = errors.New("empty email claim")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the email claim.
//
// The token includes:
//   - email: the identity the token is issued for
//   - iat:   the current time
//   - exp:   the current time plus tokenDuration
//
// Both time claims are derived from the same instant, so exp-iat always equals
// tokenDuration. Returns an error if any parameter is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("a@x.com", time.Hour, "secret")
func GenerateJWTToken(email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if email == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Email:        email,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// claims.
//
// Validation includes:
//   - signature verification with tokenSignKey (HS256 only)
//   - presence and validity of the exp claim
//   - presence of a non-empty email claim
//
// Expired tokens produce an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return models.Token{}, ErrEmptyEmailClaim
	}

	return tokenFromClaims(tokenString, claims), nil
}

// ParseJWTUnverified decodes the claims of tokenString without checking the
// signature. It is meant for clients that only need to display what a token
// asserts; never use it for authorization.
func ParseJWTUnverified(tokenString string) (models.Token, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Token{}, err
	}

	return tokenFromClaims(tokenString, claims), nil
}

func tokenFromClaims(tokenString string, claims *models.TokenClaims) models.Token {
	token := models.Token{SignedString: tokenString, Email: claims.Email}
	if claims.IssuedAt != nil {
		token.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token
}
