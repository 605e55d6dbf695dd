// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestEmailCtxKey(t *testing.T) {
	if EmailCtxKey.String() != "email" {
		t.Errorf("expected 'email', got '%s'", EmailCtxKey.String())
	}
}

func TestGetEmailFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "a@x.com")

	email, ok := GetEmailFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if email != "a@x.com" {
		t.Errorf("expected email=a@x.com, got %s", email)
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	email, ok := GetEmailFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got %s", email)
	}
}

func TestGetEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, 42)

	if _, ok := GetEmailFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetEmailFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "")

	if _, ok := GetEmailFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty email, got true")
	}
}

func TestGetEmailFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "a@x.com")

	if _, ok := GetEmailFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
