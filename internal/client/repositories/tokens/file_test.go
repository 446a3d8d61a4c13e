package tokens

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupFileRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	r, err := NewFileRepository(dir)
	require.NoError(t, err)
	return r, dir
}

func TestFileRepository_GetAbsentKey(t *testing.T) {
	r, _ := setupFileRepo(t)

	v, err := r.Get(context.Background(), "tafuta-auth-token")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestFileRepository_SetGetRoundTrip(t *testing.T) {
	r, dir := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "tafuta-auth-token", "fake-jwt-token-for-1"))

	v, err := r.Get(ctx, "tafuta-auth-token")
	require.NoError(t, err)
	require.Equal(t, "fake-jwt-token-for-1", v)

	// The value on disk must not be plaintext.
	blob, err := os.ReadFile(filepath.Join(dir, "tafuta-auth-token.tok"))
	require.NoError(t, err)
	require.NotContains(t, string(blob), "fake-jwt-token-for-1")
}

func TestFileRepository_Delete(t *testing.T) {
	r, _ := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "v"))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, r.Delete(ctx, "k"))
}

func TestFileRepository_TamperedBlobFailsToUnseal(t *testing.T) {
	r, dir := setupFileRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "secret"))

	path := filepath.Join(dir, "k.tok")
	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, blob, 0o600))

	_, err = r.Get(ctx, "k")
	require.Error(t, err)
}

func TestFileRepository_KeySurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	r1, err := NewFileRepository(dir)
	require.NoError(t, err)
	require.NoError(t, r1.Set(ctx, "k", "v"))

	r2, err := NewFileRepository(dir)
	require.NoError(t, err)
	v, err := r2.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", v)
}
