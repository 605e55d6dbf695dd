// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessToken is the body of GET /jwt. On failure the token is empty.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

// AdminStatus is the body of GET /users/admin/{email}.
type AdminStatus struct {
	IsAdmin bool `json:"isAdmin"`
}

// Message is a fixed, human-readable response body used for rejections.
type Message struct {
	Message string `json:"message"`
}
