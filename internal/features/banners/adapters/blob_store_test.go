package adapters

import (
	"context"
	"testing"

	"banner-studio/internal/core/cache"
	"banner-studio/internal/features/banners/domain"
	"banner-studio/internal/features/banners/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisBlobStore(t *testing.T) (*RedisBlobStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisBlobStore(c), mr
}

func TestBlobStores(t *testing.T) {
	redisStore, _ := newRedisBlobStore(t)

	stores := map[string]ports.BlobStore{
		"Memory": NewMemoryBlobStore(),
		"Redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			blob := domain.Blob{MimeType: domain.MimePNG, Data: []byte{0x89, 'P', 'N', 'G'}}

			require.NoError(t, store.Put(ctx, "a", blob))

			got, err := store.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, blob, *got)

			ids, err := store.IDs(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a"}, ids)

			require.NoError(t, store.Delete(ctx, "a"))
			_, err = store.Get(ctx, "a")
			assert.ErrorIs(t, err, ports.ErrBlobNotFound)

			ids, err = store.IDs(ctx)
			require.NoError(t, err)
			assert.Empty(t, ids)

			// Deleting twice is harmless.
			assert.NoError(t, store.Delete(ctx, "a"))
		})
	}
}

func TestRedisBlobStore_KeyLayout(t *testing.T) {
	store, mr := newRedisBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "01ABC", domain.Blob{MimeType: domain.MimeJPEG, Data: []byte{0xff, 0xd8}}))
	assert.True(t, mr.Exists("banner_blob:01ABC"))
	assert.Zero(t, mr.TTL("banner_blob:01ABC"))
}

func TestRedisBlobStore_CorruptPayload(t *testing.T) {
	store, mr := newRedisBlobStore(t)
	require.NoError(t, mr.Set("banner_blob:bad", "not-json"))

	_, err := store.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal blob")
}

func TestMemoryBlobStore_CopiesData(t *testing.T) {
	store := NewMemoryBlobStore()
	ctx := context.Background()
	data := []byte("abc")

	require.NoError(t, store.Put(ctx, "x", domain.Blob{MimeType: domain.MimePNG, Data: data}))
	data[0] = 'z'

	got, err := store.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got.Data)
}
