// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared by the transport, service and
// storage layers of the hair salon API: stored documents, the typed account
// projection used for authorization, JWT claims and the raw persistence
// results relayed back to HTTP callers.
package models
