package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// LocalStorage keeps blobs on a filesystem whose root is served over HTTP
// at publicPrefix.
type LocalStorage struct {
	fs           afero.Fs
	publicPrefix string
}

// NewLocalStorage roots storage at dir on the OS filesystem.
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", dir, err)
	}
	return NewLocalStorageFs(afero.NewBasePathFs(afero.NewOsFs(), dir), publicPrefix), nil
}

// NewLocalStorageFs uses fsys as the storage root.
func NewLocalStorageFs(fsys afero.Fs, publicPrefix string) *LocalStorage {
	return &LocalStorage{
		fs:           fsys,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

func cleanKey(key string) (string, error) {
	k := path.Clean("/" + key)
	if k == "/" || strings.HasSuffix(key, "/") {
		return "", ErrInvalidKey
	}
	return strings.TrimPrefix(k, "/"), nil
}

func (s *LocalStorage) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	if dir := path.Dir(k); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	tmp := k + ".tmp-" + uuid.NewString()
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		_ = s.fs.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", k, err)
	}
	if err := s.fs.Rename(tmp, k); err != nil {
		_ = s.fs.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", k, err)
	}

	return s.publicPrefix + "/" + k, nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(k); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", k, err)
	}
	return nil
}

func (s *LocalStorage) KeyFromURL(url string) (string, bool) {
	rest, ok := strings.CutPrefix(url, s.publicPrefix+"/")
	if !ok || rest == "" {
		return "", false
	}
	k, err := cleanKey(rest)
	if err != nil || k != rest {
		return "", false
	}
	return k, true
}

func (s *LocalStorage) Ping(context.Context) error {
	_, err := s.fs.Stat(".")
	return err
}

// Exists reports whether key is present.
func (s *LocalStorage) Exists(key string) (bool, error) {
	k, err := cleanKey(key)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, k)
}
