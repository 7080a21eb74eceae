package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

// FileStore persists the tokens as a small JSON object in
// <dir>/<profile>.json, readable only by the owner. A FileStore without a
// directory, or a nil *FileStore, behaves like DetachedStore.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// NewFileStore returns a store rooted at dir. dir may be empty.
func NewFileStore(dir, profile string, log zerolog.Logger) *FileStore {
	s := &FileStore{log: log}
	if dir != "" {
		if profile == "" {
			profile = "default"
		}
		s.path = filepath.Join(dir, profile+".json")
	}
	return s
}

func (s *FileStore) attached() bool {
	return s != nil && s.path != ""
}

func (s *FileStore) Save(_ context.Context, sess domain.Session) error {
	if !s.attached() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("discarding unreadable credentials file")
		values = map[string]string{}
	}
	values[domain.AccessTokenKey] = sess.AccessToken
	values[domain.RefreshTokenKey] = sess.RefreshToken
	return s.write(values)
}

func (s *FileStore) AccessToken(_ context.Context) (string, bool) {
	return s.get(domain.AccessTokenKey)
}

func (s *FileStore) RefreshToken(_ context.Context) (string, bool) {
	return s.get(domain.RefreshTokenKey)
}

func (s *FileStore) Clear(_ context.Context) error {
	if !s.attached() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		values = map[string]string{}
	}
	delete(values, domain.AccessTokenKey)
	delete(values, domain.RefreshTokenKey)
	if len(values) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove credentials: %w", err)
		}
		return nil
	}
	return s.write(values)
}

func (s *FileStore) HasSession(ctx context.Context) bool {
	_, ok := s.AccessToken(ctx)
	return ok
}

func (s *FileStore) get(key string) (string, bool) {
	if !s.attached() {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("credentials unreadable, treating as absent")
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

func (s *FileStore) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return values, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *FileStore) write(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
