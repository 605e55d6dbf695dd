// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson"

// Document is a free-form record as stored in a collection.
//
// Request bodies are decoded into a Document and inserted as-is; find
// operations return Documents with their generated "_id". No schema is
// enforced at this layer.
type Document = bson.M

// Collection names used in the salon database.
const (
	CollectionUsers              = "users"
	CollectionInterestedCustomer = "interestedCustomer"
	CollectionBlogs              = "blogs"
	CollectionComments           = "comment"
	CollectionProducts           = "products"
	CollectionOrders             = "orders"
)

// Well-known document field names.
const (
	FieldID        = "_id"
	FieldEmail     = "email"
	FieldRole      = "role"
	FieldUserEmail = "userEmail"
)
