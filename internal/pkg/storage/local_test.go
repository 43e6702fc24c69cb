package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Upload(ctx, strings.NewReader("a,b\n"), "attendance_2024-03-05.csv", "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "attendance_2024-03-05.csv", path)

	ok, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(body))

	objects, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "attendance_2024-03-05.csv", objects[0].Name)
	assert.Equal(t, int64(4), objects[0].Size)
}

func TestLocalStorage_Missing(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ok, err := s.Exists(ctx, "nope.csv")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Download(ctx, "nope.csv")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStorage_StaysInsideBase(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Upload(ctx, strings.NewReader("x"), "../../escape.csv", "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "escape.csv", path)

	_, err = s.Upload(ctx, strings.NewReader("x"), "", "text/csv")
	assert.Error(t, err)
}
