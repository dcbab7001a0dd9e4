package service

import (
	"testing"
	"time"
)

func TestMemoryRefreshTokenStore_StoreExistsRevoke(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-1", "u1", time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}

	ok, err := store.Exists("jti-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected stored jti to exist")
	}

	if err := store.Revoke("jti-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = store.Exists("jti-1")
	if err != nil {
		t.Fatalf("exists after revoke: %v", err)
	}
	if ok {
		t.Fatalf("expected revoked jti to be gone")
	}
}

func TestMemoryRefreshTokenStore_Expiry(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-old", "u1", -time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}

	ok, err := store.Exists("jti-old")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatalf("expected expired jti to be reported missing")
	}
}

func TestMemoryRefreshTokenStore_UnknownJTI(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	ok, err := store.Exists("never-stored")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatalf("expected unknown jti to be missing")
	}
	if err := store.Revoke("never-stored"); err != nil {
		t.Fatalf("revoke of unknown jti should be a no-op, got %v", err)
	}
}
