// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role value recognised by the authorization layer.
const RoleAdmin = "admin"

// User is the typed projection of an account document.
//
// Accounts are stored as free-form documents (see [Document]); only the
// fields needed to authorize a request are decoded into this struct. Any
// other fields the client sent on registration are ignored here.
type User struct {
	// ID is the generated document identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`

	// Email is the identity key. It is not unique at the storage level.
	Email string `bson:"email" json:"email"`

	// Role is empty for regular accounts and "admin" for administrators.
	Role string `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
