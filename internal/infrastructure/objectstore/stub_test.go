package objectstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStore(t *testing.T) {
	store := NewStubObjectStore()
	ctx := context.Background()

	t.Run("upload_url", func(t *testing.T) {
		url, expiresAt, err := store.GenerateUploadURL(ctx, "tenants/a/project/b/file.pdf", "application/pdf", 15*time.Minute)
		require.NoError(t, err)
		assert.Contains(t, url, "/upload/tenants/a/project/b/file.pdf")
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)
	})

	t.Run("download_url", func(t *testing.T) {
		url, _, err := store.GenerateDownloadURL(ctx, "tenants/a/project/b/file.pdf", time.Minute)
		require.NoError(t, err)
		assert.Contains(t, url, "/download/tenants/a/project/b/file.pdf")
	})

	t.Run("exists_and_delete", func(t *testing.T) {
		exists, err := store.ObjectExists(ctx, "any/key")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, store.DeleteObject(ctx, "any/key"))
	})

	t.Run("empty_key_refused", func(t *testing.T) {
		_, _, err := store.GenerateUploadURL(ctx, "", "", time.Minute)
		assert.Error(t, err)
		_, _, err = store.GenerateDownloadURL(ctx, "", time.Minute)
		assert.Error(t, err)
		assert.Error(t, store.DeleteObject(ctx, ""))
		_, err = store.ObjectExists(ctx, "")
		assert.Error(t, err)
	})
}
