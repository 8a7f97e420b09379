package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutDelete(t *testing.T) {
	ctx := t.Context()
	fsys := afero.NewMemMapFs()
	s := NewLocalStorageFs(fsys, "/static/")

	url, err := s.Put(ctx, "cover_images/book_1.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/static/cover_images/book_1.png", url)

	data, err := afero.ReadFile(fsys, "cover_images/book_1.png")
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	entries, err := afero.ReadDir(fsys, "cover_images")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")

	key, ok := s.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "cover_images/book_1.png", key)

	require.NoError(t, s.Delete(ctx, key))
	exists, err := s.Exists(key)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, s.Delete(ctx, key), "deleting a missing blob is not an error")
}

func TestLocalRejectsEscapingKeys(t *testing.T) {
	s := NewLocalStorageFs(afero.NewMemMapFs(), "/static")

	_, err := s.Put(t.Context(), "", []byte("x"), "")
	assert.ErrorIs(t, err, ErrInvalidKey)

	url, err := s.Put(t.Context(), "../../etc/passwd", []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, "/static/etc/passwd", url)
}

func TestLocalKeyFromURL(t *testing.T) {
	s := NewLocalStorageFs(afero.NewMemMapFs(), "/static")

	tests := []struct {
		url  string
		key  string
		want bool
	}{
		{url: "/static/cover_images/a.jpg", key: "cover_images/a.jpg", want: true},
		{url: "/other/cover_images/a.jpg", want: false},
		{url: "/static/", want: false},
		{url: "/static/../secret", want: false},
		{url: "https://cdn.example/a.jpg", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			key, ok := s.KeyFromURL(tt.url)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000/library", publicBaseURL(MinIOConfig{Endpoint: "localhost:9000", Bucket: "library"}))
	assert.Equal(t, "https://s3.example/library", publicBaseURL(MinIOConfig{Endpoint: "s3.example", Bucket: "library", UseSSL: true}))
	assert.Equal(t, "https://cdn.example/library", publicBaseURL(MinIOConfig{PublicURL: "https://cdn.example/", Bucket: "library"}))
}
