package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"assistencia_os/internal/domain/entities"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewSessionStoreAt(path)
	ctx := context.Background()

	user := entities.User{ID: "adm-loja-1", Nome: "Administrador Loja 1", Role: entities.RoleAdm, LojaID: SeedLoja1}
	if err := store.Save(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != "adm-loja-1" || got.Role != entities.RoleAdm {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = store.Get(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected empty session after clear, got %+v (%v)", got, err)
	}
}

func TestSessionStore_MissingSlot(t *testing.T) {
	store := NewSessionStoreAt(filepath.Join(t.TempDir(), "missing.json"))
	got, err := store.Get(context.Background())
	if err != nil || got != nil {
		t.Fatalf("expected nil/nil, got %+v (%v)", got, err)
	}
}

func TestSessionStore_CorruptSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewSessionStoreAt(path)
	got, err := store.Get(context.Background())
	if err != nil || got != nil {
		t.Fatalf("expected corrupt slot treated as no session, got %+v (%v)", got, err)
	}
}

func TestSessionStore_ClearMissingSlot(t *testing.T) {
	store := NewSessionStoreAt(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
