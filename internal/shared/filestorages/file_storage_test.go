package filestorages

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage("")
	assert.Nil(t, storage)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_Get_RoundTrip(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	err = storage.Put(ctx, "user-analytics/u1.json", strings.NewReader(`{"userId":"u1"}`))
	require.NoError(t, err)

	rc, err := storage.Get(ctx, "user-analytics/u1.json")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `{"userId":"u1"}`, string(data))
}

func TestPut_OverwritesPreviousValue(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, storage.Put(ctx, "k.json", bytes.NewReader([]byte("v1"))))
	require.NoError(t, storage.Put(ctx, "k.json", bytes.NewReader([]byte("v2"))))

	rc, err := storage.Get(ctx, "k.json")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	rc, err := storage.Get(context.Background(), "missing.json")
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestValidateKey(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty key", key: ""},
		{name: "path traversal", key: "../escape.json"},
		{name: "absolute path", key: "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.Put(ctx, tt.key, strings.NewReader("x"))
			assert.ErrorIs(t, err, ErrInvalidKey)

			_, err = storage.Get(ctx, tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}
