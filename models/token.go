// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every access token: the subject's
// email plus the standard issued-at and expiry times. No role or scope is
// ever embedded; authorization decisions look the account up instead.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed access token together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Email is the identity asserted by the token.
	Email string `json:"-"`

	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact serialized token.
func (t Token) String() string {
	return t.SignedString
}
