package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
)

var (
	_ ports.CredentialStore = (*MemoryStore)(nil)
	_ ports.CredentialStore = (*FileStore)(nil)
	_ ports.CredentialStore = (*RedisStore)(nil)
	_ ports.CredentialStore = (*MongoStore)(nil)
	_ ports.CredentialStore = DetachedStore{}
)

// exerciseStore runs the contract every attached backend must satisfy.
func exerciseStore(t *testing.T, s ports.CredentialStore) {
	t.Helper()
	ctx := context.Background()

	if s.HasSession(ctx) {
		t.Fatalf("fresh store reports a session")
	}
	if _, ok := s.AccessToken(ctx); ok {
		t.Fatalf("fresh store returned an access token")
	}

	if err := s.Save(ctx, domain.Session{AccessToken: "A", RefreshToken: "R"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !s.HasSession(ctx) {
		t.Fatalf("expected session after save")
	}
	if v, ok := s.AccessToken(ctx); !ok || v != "A" {
		t.Fatalf("access token = %q, %v", v, ok)
	}
	if v, ok := s.RefreshToken(ctx); !ok || v != "R" {
		t.Fatalf("refresh token = %q, %v", v, ok)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.HasSession(ctx) {
		t.Fatalf("expected no session after clear")
	}
	if _, ok := s.RefreshToken(ctx); ok {
		t.Fatalf("refresh token survived clear")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(t.TempDir(), "ops", zerolog.Nop()))
}

func TestFileStore_DurableAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewFileStore(dir, "", zerolog.Nop())
	if err := first.Save(ctx, domain.Session{AccessToken: "A", RefreshToken: "R"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "default.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	second := NewFileStore(dir, "", zerolog.Nop())
	if v, ok := second.AccessToken(ctx); !ok || v != "A" {
		t.Fatalf("second instance read %q, %v", v, ok)
	}
}

func TestFileStore_CorruptFileReadsAbsent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "default.json"), []byte("{nope"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewFileStore(dir, "default", zerolog.Nop())
	if s.HasSession(context.Background()) {
		t.Fatalf("corrupt file should read as no session")
	}
	if err := s.Save(context.Background(), domain.Session{AccessToken: "A"}); err != nil {
		t.Fatalf("save over corrupt file: %v", err)
	}
	if !s.HasSession(context.Background()) {
		t.Fatalf("expected session after overwrite")
	}
}

func TestDetachedBehaviour(t *testing.T) {
	ctx := context.Background()
	var nilFile *FileStore
	stores := map[string]ports.CredentialStore{
		"detached":     DetachedStore{},
		"file without": NewFileStore("", "default", zerolog.Nop()),
		"nil file":     nilFile,
	}
	for name, s := range stores {
		if err := s.Save(ctx, domain.Session{AccessToken: "A", RefreshToken: "R"}); err != nil {
			t.Fatalf("%s: save should be a no-op, got %v", name, err)
		}
		if s.HasSession(ctx) {
			t.Fatalf("%s: expected no session", name)
		}
		if _, ok := s.AccessToken(ctx); ok {
			t.Fatalf("%s: expected absent access token", name)
		}
		if _, ok := s.RefreshToken(ctx); ok {
			t.Fatalf("%s: expected absent refresh token", name)
		}
		if err := s.Clear(ctx); err != nil {
			t.Fatalf("%s: clear should be a no-op, got %v", name, err)
		}
	}
}

func sessionAR() domain.Session {
	return domain.Session{AccessToken: "A", RefreshToken: "R"}
}
